package builtin

import (
	"context"
	"fmt"
	"time"

	"github.com/NekoNekoNiko120/relay"
	"github.com/NekoNekoNiko120/relay/exec"
)

type bashArgs struct {
	Command string `json:"command"`
	Timeout int    `json:"timeout"` // milliseconds
}

// executeBash runs a shell command and reports its sanitized output.
// Non-zero exit codes and timeouts are tool-level failures.
func executeBash(ctx context.Context, input map[string]any) relay.ToolResult {
	var a bashArgs
	if err := decodeArgs(input, &a); err != nil {
		return domainError(fmt.Sprintf("invalid arguments: %s", err))
	}

	if a.Command == "" {
		return domainError("command is required")
	}

	res := exec.Run(ctx, a.Command, time.Duration(a.Timeout)*time.Millisecond)

	output := res.Output
	if res.Truncated {
		output = fmt.Sprintf("[output truncated: showing tail of %d lines]\n%s", res.TotalLines, output)
	}

	if res.TimedOut {
		return domainError(fmt.Sprintf("command timed out\n%s", output))
	}
	if res.ExitCode != 0 {
		return domainError(fmt.Sprintf("command exited with code %d\n%s", res.ExitCode, output))
	}

	return textResult(output)
}
