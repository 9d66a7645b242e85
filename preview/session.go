// Package preview tracks in-flight proposed document edits from creation
// to commit or revert. At most one non-terminal session exists per target
// at any time; the invariant is enforced at creation.
package preview

import (
	"context"
	"fmt"
	"sync"

	"github.com/NekoNekoNiko120/relay"
	"github.com/NekoNekoNiko120/relay/diff"
)

// State is a preview session's position in its lifecycle.
type State int

const (
	// StateCreated holds the original snapshot; no preview shown yet.
	StateCreated State = iota
	// StatePreviewing displays the proposed content for confirmation.
	StatePreviewing
	// StateCommitted is terminal: the proposed content was persisted.
	StateCommitted
	// StateReverted is terminal: the original content was restored.
	StateReverted
)

// String returns the state name used in error messages.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StatePreviewing:
		return "previewing"
	case StateCommitted:
		return "committed"
	case StateReverted:
		return "reverted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminal reports whether the state is final. No session survives past a
// terminal transition.
func (s State) Terminal() bool {
	return s == StateCommitted || s == StateReverted
}

// Registry owns the live preview sessions, keyed by target identity.
// Uniqueness is per target, so edits to different targets interleave
// freely; a second create for the same target is rejected while one is
// outstanding.
type Registry struct {
	store relay.DocumentStore

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a session registry over the host document store.
func NewRegistry(store relay.DocumentStore) *Registry {
	return &Registry{
		store:    store,
		sessions: make(map[string]*Session),
	}
}

// Create opens a session for the target, capturing the original snapshot.
// It fails with ErrSessionConflict if a non-terminal session already exists
// for the target.
func (r *Registry) Create(targetID string, original []string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[targetID]; ok {
		return nil, fmt.Errorf("preview already in flight for %q: %w", targetID, relay.ErrSessionConflict)
	}

	snapshot := make([]string, len(original))
	copy(snapshot, original)

	s := &Session{
		reg:      r,
		targetID: targetID,
		original: snapshot,
		state:    StateCreated,
	}
	r.sessions[targetID] = s
	return s, nil
}

// Active returns the live session for a target, if any.
func (r *Registry) Active(targetID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[targetID]
	return s, ok
}

// Session is the per-target preview state machine:
// Created → Previewing → Committed, or {Created, Previewing} → Reverted.
// Commit never skips Previewing. Transitions serialize on the registry
// lock; the target's content is never mutated concurrently.
type Session struct {
	reg      *Registry
	targetID string
	original []string
	proposed []string
	ops      []diff.Op
	state    State
}

// TargetID returns the target document identity.
func (s *Session) TargetID() string {
	return s.targetID
}

// State returns the current state.
func (s *Session) State() State {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()
	return s.state
}

// Original returns a copy of the snapshot captured at creation.
func (s *Session) Original() []string {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()
	out := make([]string, len(s.original))
	copy(out, s.original)
	return out
}

// Ops returns the edit script computed when the preview was entered.
func (s *Session) Ops() []diff.Op {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()
	return s.ops
}

// EnterPreview stores the proposed content, computes its diff against the
// original, replaces the target's displayed content with the proposal, and
// transitions to Previewing. The display mutation is presentation only;
// nothing is persisted until Commit.
func (s *Session) EnterPreview(ctx context.Context, proposed []string) ([]diff.Op, error) {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()

	if s.state != StateCreated {
		return nil, fmt.Errorf("enter preview from %s: %w", s.state, relay.ErrSessionState)
	}

	snapshot := make([]string, len(proposed))
	copy(snapshot, proposed)

	if err := s.reg.store.ReplaceLines(ctx, s.targetID, snapshot); err != nil {
		return nil, fmt.Errorf("display proposed content for %q: %w", s.targetID, err)
	}

	s.proposed = snapshot
	s.ops = diff.Diff(s.original, snapshot)
	s.state = StatePreviewing
	return s.ops, nil
}

// Commit persists the proposed content as the target's real content and
// evicts the session. Valid only from Previewing.
func (s *Session) Commit(ctx context.Context) error {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()

	if s.state != StatePreviewing {
		return fmt.Errorf("commit from %s: %w", s.state, relay.ErrSessionState)
	}

	if err := s.reg.store.ReplaceLines(ctx, s.targetID, s.proposed); err != nil {
		return fmt.Errorf("commit %q: %w", s.targetID, err)
	}
	if err := s.reg.store.Persist(ctx, s.targetID); err != nil {
		return fmt.Errorf("persist %q: %w", s.targetID, err)
	}

	s.state = StateCommitted
	delete(s.reg.sessions, s.targetID)
	return nil
}

// Revert restores the exact original snapshot as the target's displayed
// and real content and evicts the session. Valid from Previewing, and from
// Created so a failed preview generation can still close the session —
// from Created the display was never touched, so restoration is trivially
// exact.
func (s *Session) Revert(ctx context.Context) error {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()

	if s.state.Terminal() {
		return fmt.Errorf("revert from %s: %w", s.state, relay.ErrSessionState)
	}

	// Hand the store a fresh copy so no later mutation can alias the snapshot.
	restored := make([]string, len(s.original))
	copy(restored, s.original)
	if err := s.reg.store.ReplaceLines(ctx, s.targetID, restored); err != nil {
		return fmt.Errorf("revert %q: %w", s.targetID, err)
	}

	s.state = StateReverted
	delete(s.reg.sessions, s.targetID)
	return nil
}
