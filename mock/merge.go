package mock

import (
	"context"

	"github.com/NekoNekoNiko120/relay"
)

// Interface compliance check.
var _ relay.MergeService = (*MergeService)(nil)

// MergeService is a test double for relay.MergeService.
// Set MergeFn before calling Merge.
type MergeService struct {
	MergeFn func(ctx context.Context, req relay.MergeRequest) (relay.MergeResult, error)
}

// Merge delegates to MergeFn.
func (m *MergeService) Merge(ctx context.Context, req relay.MergeRequest) (relay.MergeResult, error) {
	return m.MergeFn(ctx, req)
}
