package relay

import (
	"context"
	"time"
)

// DefaultMergeTimeout bounds the wait for a remote merge response. Expiry
// is treated as a merge failure and triggers an automatic revert.
const DefaultMergeTimeout = 120 * time.Second

// MergeRequest asks the remote merge service to produce the full merged
// document from the original content and a proposed edit sketch.
type MergeRequest struct {
	// Instructions describe the requested transformation in prose.
	Instructions string

	// OriginalContent is the document as it exists before the edit.
	OriginalContent string

	// ProposedSketch is the partial or approximate edit the agent produced.
	ProposedSketch string
}

// MergeResult is a successful merge response.
type MergeResult struct {
	MergedContent string
}

// MergeService is a strategy pattern interface for remote merge providers.
// Implementations must honor context cancellation and deadlines; transport
// failures wrap ErrNetwork, malformed or empty responses wrap ErrParse.
type MergeService interface {
	Merge(ctx context.Context, req MergeRequest) (MergeResult, error)
}
