package route

import (
	"fmt"

	"github.com/NekoNekoNiko120/relay"
)

// Registry holds the static redirection rule set, keyed by source tool
// name. Populated once at startup and read-only thereafter.
type Registry struct {
	rules map[string]relay.RedirectionRule
}

// NewRegistry builds a Registry from a rule set. Invalid rules and
// duplicate source tools are configuration errors reported at load time,
// not at call time.
func NewRegistry(rules []relay.RedirectionRule) (*Registry, error) {
	byName := make(map[string]relay.RedirectionRule, len(rules))
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %w", relay.ErrConfiguration, err)
		}
		if _, ok := byName[rule.SourceTool]; ok {
			return nil, fmt.Errorf("duplicate redirection rule for tool %q: %w",
				rule.SourceTool, relay.ErrConfiguration)
		}
		byName[rule.SourceTool] = rule
	}
	return &Registry{rules: byName}, nil
}

// Lookup returns the rule for a source tool name. Pure read, O(1).
func (r *Registry) Lookup(toolName string) (relay.RedirectionRule, bool) {
	rule, ok := r.rules[toolName]
	return rule, ok
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	return len(r.rules)
}
