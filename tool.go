package relay

import "context"

// ToolRequest is a tool invocation issued by the agent: a named operation
// with structured input. Immutable once issued; transforms return new maps.
type ToolRequest struct {
	Name  string
	Input map[string]any
}

// ToolResult is the outcome of a tool invocation as reported back to the
// agent. Error is set when Success is false.
type ToolResult struct {
	Success bool
	Output  string
	Error   string
}

// ToolRunner executes pass-through tool invocations — tools not subject to
// redirection that run in-process. Run returns error only for infrastructure
// failures; tool-level failures are reported in the result.
type ToolRunner interface {
	Run(ctx context.Context, req ToolRequest) (ToolResult, error)
}

// Failure builds a failed ToolResult from an error.
func Failure(err error) ToolResult {
	return ToolResult{Error: err.Error()}
}

// Output builds a successful ToolResult with the given output.
func Output(text string) ToolResult {
	return ToolResult{Success: true, Output: text}
}
