package route

import (
	"context"
	"fmt"

	"github.com/NekoNekoNiko120/relay"
	"github.com/bmatcuk/doublestar/v4"
)

// Dispatcher turns a tool invocation into a routing decision. Tool names
// matching a redirect pattern are routed to backends via the registry and
// resolver; everything else passes through unchanged.
type Dispatcher struct {
	registry *Registry
	resolver *Resolver
	patterns []string
}

// NewDispatcher creates a Dispatcher. Patterns are doublestar globs matched
// against tool names; a tool matching any pattern is subject to
// redirection. Invalid patterns are a configuration error.
func NewDispatcher(registry *Registry, resolver *Resolver, patterns []string) (*Dispatcher, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid redirect pattern %q: %w", p, relay.ErrConfiguration)
		}
	}
	return &Dispatcher{registry: registry, resolver: resolver, patterns: patterns}, nil
}

// Dispatch produces a routing decision for the request. It has no side
// effects; errors abort the invocation before anything runs.
func (d *Dispatcher) Dispatch(ctx context.Context, req relay.ToolRequest) (relay.Decision, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !d.redirectable(req.Name) {
		return relay.PassThrough{Request: req}, nil
	}

	rule, ok := d.registry.Lookup(req.Name)
	if !ok {
		return nil, fmt.Errorf("no redirection rule for tool %q: %w", req.Name, relay.ErrConfiguration)
	}

	backend, err := d.resolver.Resolve(ctx, rule.TargetKind, rule.PreferredBackend)
	if err != nil {
		return nil, fmt.Errorf("tool %q: %w", req.Name, err)
	}

	input, err := rule.Transform.Apply(req.Input)
	if err != nil {
		return nil, fmt.Errorf("tool %q: %w", req.Name, err)
	}

	return relay.Redirected{Invocation: relay.RedirectedInvocation{
		BackendID: backend.ID,
		Operation: rule.TargetOperation,
		Input:     input,
		Edit:      rule.Edit,
	}}, nil
}

func (d *Dispatcher) redirectable(name string) bool {
	for _, p := range d.patterns {
		if ok, _ := doublestar.Match(p, name); ok {
			return true
		}
	}
	return false
}
