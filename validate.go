package relay

import "fmt"

// Validate checks universal constraints on ToolRequest.
func (r ToolRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("tool name must be non-empty: %w", ErrValidation)
	}
	return nil
}

// Validate checks that a rule is complete enough to route with. Uniqueness
// across a rule set is checked by the registry at load time.
func (r RedirectionRule) Validate() error {
	if r.SourceTool == "" {
		return fmt.Errorf("rule source tool must be non-empty: %w", ErrValidation)
	}
	if r.TargetKind == "" {
		return fmt.Errorf("rule %q: target backend kind must be non-empty: %w", r.SourceTool, ErrValidation)
	}
	if r.TargetOperation == "" {
		return fmt.Errorf("rule %q: target operation must be non-empty: %w", r.SourceTool, ErrValidation)
	}
	return nil
}
