// Package exec runs shell commands for the pass-through bash tool, with
// output sanitization and tail truncation.
package exec

import (
	"bytes"
	"context"
	"errors"
	osexec "os/exec"
	"syscall"
	"time"
)

// DefaultTimeout bounds command execution when the caller specifies none.
const DefaultTimeout = 120 * time.Second

// Result is the outcome of a command run. Output is sanitized and
// tail-truncated combined stdout/stderr.
type Result struct {
	Output     string
	ExitCode   int
	TimedOut   bool
	Truncated  bool
	TotalLines int
}

// Run executes a bash command and collects its combined output. The whole
// process group is killed on timeout so child processes don't linger.
func Run(ctx context.Context, command string, timeout time.Duration) Result {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := osexec.CommandContext(ctx, "bash", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}

	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	runErr := cmd.Run()

	tr := TruncateTail(Sanitize(buf.String()), DefaultMaxLines, DefaultMaxBytes)
	res := Result{
		Output:     tr.Content,
		Truncated:  tr.Truncated,
		TotalLines: tr.TotalLines,
	}

	if ctx.Err() != nil {
		res.TimedOut = true
		res.ExitCode = -1
		return res
	}
	if runErr != nil {
		var exitErr *osexec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1
		}
	}
	return res
}
