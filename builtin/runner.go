package builtin

import (
	"context"
	"fmt"

	"github.com/NekoNekoNiko120/relay"
)

// Ensure type implements interface.
var _ relay.ToolRunner = (*Runner)(nil)

// Runner executes pass-through tool requests against the local filesystem
// and shell. Unknown tool names produce a failed result, not an error, so
// the agent can correct itself.
type Runner struct{}

// NewRunner returns a Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run dispatches a request to the named built-in tool.
func (r *Runner) Run(ctx context.Context, req relay.ToolRequest) (relay.ToolResult, error) {
	switch req.Name {
	case "read":
		return executeRead(ctx, req.Input), nil
	case "write":
		return executeWrite(ctx, req.Input), nil
	case "grep":
		return executeGrep(ctx, req.Input), nil
	case "glob":
		return executeGlob(ctx, req.Input), nil
	case "bash":
		return executeBash(ctx, req.Input), nil
	default:
		return domainError(fmt.Sprintf("unknown tool: %s", req.Name)), nil
	}
}
