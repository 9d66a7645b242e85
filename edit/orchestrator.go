// Package edit drives the end-to-end flow for an edit-class tool
// invocation: fetch the original content, obtain merged content from the
// remote merge service, open a preview, await approval, then commit or
// revert. Every failure path after a session opens ends in a revert — the
// document is guaranteed to return to its exact pre-preview content before
// the error is surfaced.
package edit

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NekoNekoNiko120/relay"
	"github.com/NekoNekoNiko120/relay/diff"
	"github.com/NekoNekoNiko120/relay/preview"
)

// Orchestrator composes the document store, merge service, preview
// registry, and approver. Runs for different targets interleave freely;
// per-target exclusivity comes from the preview registry.
type Orchestrator struct {
	store    relay.DocumentStore
	merger   relay.MergeService
	approver relay.Approver
	sessions *preview.Registry
	timeout  time.Duration
	onEvent  func(relay.Event)
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithTimeout bounds the wait for the remote merge response.
// Default is relay.DefaultMergeTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Orchestrator) { o.timeout = d }
}

// WithEventHandler sets a callback that receives progress events.
// If nil or not set, events are silently discarded.
func WithEventHandler(h func(relay.Event)) Option {
	return func(o *Orchestrator) { o.onEvent = h }
}

// New creates an Orchestrator.
func New(store relay.DocumentStore, merger relay.MergeService, approver relay.Approver, sessions *preview.Registry, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		store:    store,
		merger:   merger,
		approver: approver,
		sessions: sessions,
		timeout:  relay.DefaultMergeTimeout,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Proposal is an edit-class invocation after parameter transformation.
type Proposal struct {
	// TargetID identifies the document to edit.
	TargetID string
	// Instructions describe the requested transformation in prose.
	Instructions string
	// Sketch is the proposed edit content the agent produced.
	Sketch string
}

// ProposalFromInput extracts a Proposal from canonical (post-transform)
// invocation input.
func ProposalFromInput(input map[string]any) (Proposal, error) {
	path, ok := input["path"].(string)
	if !ok || path == "" {
		return Proposal{}, fmt.Errorf("edit invocation missing path: %w", relay.ErrTransform)
	}
	sketch, _ := input["content"].(string)
	instructions, _ := input["instructions"].(string)
	if instructions == "" {
		instructions = "Apply the proposed content to the document."
	}
	return Proposal{TargetID: path, Instructions: instructions, Sketch: sketch}, nil
}

// ProposeEdit runs the full preview workflow for one proposal. All errors
// are recovered into the returned ToolResult; no preview session outlives
// the call in a non-terminal state.
func (o *Orchestrator) ProposeEdit(ctx context.Context, p Proposal) relay.ToolResult {
	isDir, err := o.store.IsDirectory(ctx, p.TargetID)
	if err != nil {
		return relay.Failure(fmt.Errorf("target %q: %w: %w", p.TargetID, relay.ErrPath, err))
	}
	if isDir {
		return relay.Failure(fmt.Errorf("target %q is a directory: %w", p.TargetID, relay.ErrPath))
	}

	original, err := o.store.ReadLines(ctx, p.TargetID)
	if err != nil {
		return relay.Failure(fmt.Errorf("read %q: %w: %w", p.TargetID, relay.ErrPath, err))
	}

	sess, err := o.sessions.Create(p.TargetID, original)
	if err != nil {
		return relay.Failure(err)
	}

	merged, err := o.merge(ctx, p, original)
	if err != nil {
		o.revert(ctx, sess, err.Error())
		return relay.Failure(err)
	}

	ops, err := sess.EnterPreview(ctx, merged)
	if err != nil {
		o.revert(ctx, sess, err.Error())
		return relay.Failure(err)
	}
	added, deleted := diff.Counts(ops)
	o.emit(relay.EventPreviewOpened{TargetID: p.TargetID, Added: added, Deleted: deleted})

	approved, err := o.approver.RequestApproval(ctx, approvalMessage(p, added, deleted), p.TargetID)
	if err != nil {
		o.revert(ctx, sess, err.Error())
		return relay.Failure(fmt.Errorf("approval for %q: %w", p.TargetID, err))
	}
	if !approved {
		o.revert(ctx, sess, "rejected")
		return relay.Failure(fmt.Errorf("edit to %q %w", p.TargetID, relay.ErrUserRejected))
	}

	if err := sess.Commit(ctx); err != nil {
		o.revert(ctx, sess, err.Error())
		return relay.Failure(err)
	}
	o.emit(relay.EventCommitted{TargetID: p.TargetID})

	return relay.Output(fmt.Sprintf("applied edit to %s (+%d -%d)", p.TargetID, added, deleted))
}

// merge calls the remote merge service under the configured deadline and
// splits the merged content into lines.
func (o *Orchestrator) merge(ctx context.Context, p Proposal, original []string) ([]string, error) {
	mergeCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	res, err := o.merger.Merge(mergeCtx, relay.MergeRequest{
		Instructions:    p.Instructions,
		OriginalContent: strings.Join(original, "\n"),
		ProposedSketch:  p.Sketch,
	})
	if err != nil {
		return nil, classifyMergeError(p.TargetID, err)
	}
	if strings.TrimSpace(res.MergedContent) == "" {
		return nil, fmt.Errorf("merge for %q returned empty content: %w", p.TargetID, relay.ErrParse)
	}
	return SplitLines(res.MergedContent), nil
}

// revert is best-effort cleanup: the primary failure is what the caller
// sees, but the session always reaches a terminal state.
func (o *Orchestrator) revert(ctx context.Context, sess *preview.Session, reason string) {
	// Revert must run even when the caller's context is already done.
	if err := sess.Revert(context.WithoutCancel(ctx)); err != nil {
		return
	}
	o.emit(relay.EventReverted{TargetID: sess.TargetID(), Reason: reason})
}

func (o *Orchestrator) emit(evt relay.Event) {
	if o.onEvent != nil {
		o.onEvent(evt)
	}
}

// classifyMergeError maps transport failures into the engine's taxonomy.
// Deadline expiry is a timeout; already-classified parse and network
// failures pass through; anything else is a network failure.
func classifyMergeError(targetID string, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("merge for %q: %w", targetID, relay.ErrTimeout)
	case errors.Is(err, relay.ErrParse), errors.Is(err, relay.ErrNetwork), errors.Is(err, context.Canceled):
		return fmt.Errorf("merge for %q: %w", targetID, err)
	default:
		return fmt.Errorf("merge for %q: %w: %w", targetID, relay.ErrNetwork, err)
	}
}

func approvalMessage(p Proposal, added, deleted int) string {
	return fmt.Sprintf("Apply proposed edit to **%s**? (+%d -%d)\n\n%s",
		p.TargetID, added, deleted, p.Instructions)
}

// SplitLines splits document content into lines, treating the final line
// as a line even without a trailing newline. A trailing newline does NOT
// produce an empty final element.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	content = strings.TrimSuffix(content, "\n")
	return strings.Split(content, "\n")
}
