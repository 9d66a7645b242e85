package mock

import (
	"context"

	"github.com/NekoNekoNiko120/relay"
)

// Interface compliance check.
var _ relay.ToolRunner = (*ToolRunner)(nil)

// ToolRunner is a test double for relay.ToolRunner.
// Set RunFn before calling Run.
type ToolRunner struct {
	RunFn func(ctx context.Context, req relay.ToolRequest) (relay.ToolResult, error)
}

// Run delegates to RunFn.
func (r *ToolRunner) Run(ctx context.Context, req relay.ToolRequest) (relay.ToolResult, error) {
	return r.RunFn(ctx, req)
}
