// Package policy provides a pattern-based approver: edits whose targets
// match configured glob patterns are approved or rejected without prompting,
// everything else falls through to an interactive approver.
package policy

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/NekoNekoNiko120/relay"
	"github.com/bmatcuk/doublestar/v4"
)

// Ensure type implements interface.
var _ relay.Approver = (*Approver)(nil)

// Approver resolves approval requests against allow and deny glob patterns
// matched on the target identifier. Deny wins over allow. Targets matching
// neither list go to the fallback; with no fallback they are rejected.
type Approver struct {
	allow    []string
	deny     []string
	fallback relay.Approver
}

// Option configures an [Approver].
type Option func(*Approver)

// WithFallback sets the approver consulted for targets no pattern covers.
func WithFallback(a relay.Approver) Option {
	return func(p *Approver) { p.fallback = a }
}

// New creates an [Approver] from allow and deny patterns. Patterns use
// doublestar syntax; invalid patterns fail construction.
func New(allow, deny []string, opts ...Option) (*Approver, error) {
	for _, pat := range append(append([]string{}, allow...), deny...) {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("policy: invalid pattern %q: %w", pat, relay.ErrConfiguration)
		}
	}
	p := &Approver{allow: allow, deny: deny}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// RequestApproval resolves the request by policy, deferring to the fallback
// when no pattern matches.
func (p *Approver) RequestApproval(ctx context.Context, message, targetID string) (bool, error) {
	if matchAny(p.deny, targetID) {
		return false, nil
	}
	if matchAny(p.allow, targetID) {
		return true, nil
	}
	if p.fallback != nil {
		return p.fallback.RequestApproval(ctx, message, targetID)
	}
	return false, nil
}

func matchAny(patterns []string, targetID string) bool {
	slashed := filepath.ToSlash(targetID)
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, slashed); err == nil && ok {
			return true
		}
	}
	return false
}
