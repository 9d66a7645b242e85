package exec_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/NekoNekoNiko120/relay/exec"
	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("captures combined output and exit code", func(t *testing.T) {
		t.Parallel()
		res := exec.Run(context.Background(), "echo out; echo err >&2", 0)
		assert.Equal(t, 0, res.ExitCode)
		assert.Contains(t, res.Output, "out")
		assert.Contains(t, res.Output, "err")
	})

	t.Run("reports non-zero exit code", func(t *testing.T) {
		t.Parallel()
		res := exec.Run(context.Background(), "exit 3", 0)
		assert.Equal(t, 3, res.ExitCode)
		assert.False(t, res.TimedOut)
	})

	t.Run("kills on timeout", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		res := exec.Run(context.Background(), "sleep 10", 50*time.Millisecond)
		assert.True(t, res.TimedOut)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("sanitizes escape sequences", func(t *testing.T) {
		t.Parallel()
		res := exec.Run(context.Background(), `printf '\033[31mred\033[0m\n'`, 0)
		assert.Equal(t, "red\n", res.Output)
	})
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	t.Run("strips ansi and control characters", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "bold", exec.Sanitize("\x1b[1mbold\x1b[0m"))
		assert.Equal(t, "a\tb\nc", exec.Sanitize("a\tb\nc\x07"))
	})

	t.Run("normalizes crlf", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\nb", exec.Sanitize("a\r\nb"))
	})

	t.Run("lone cr overwrites from column zero", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "done.....", exec.Sanitize("progress.\rdone"))
		assert.Equal(t, "xyz", exec.Sanitize("ab\rxyz"))
	})
}

func TestTruncateTail(t *testing.T) {
	t.Parallel()

	t.Run("returns input within limits unchanged", func(t *testing.T) {
		t.Parallel()
		tr := exec.TruncateTail("a\nb\nc\n", 10, 1024)
		assert.False(t, tr.Truncated)
		assert.Equal(t, "a\nb\nc\n", tr.Content)
		assert.Equal(t, 3, tr.TotalLines)
	})

	t.Run("keeps last lines when over line limit", func(t *testing.T) {
		t.Parallel()
		tr := exec.TruncateTail("1\n2\n3\n4\n5\n", 2, 1024)
		assert.True(t, tr.Truncated)
		assert.Equal(t, "4\n5\n", tr.Content)
		assert.Equal(t, 5, tr.TotalLines)
		assert.Equal(t, 2, tr.OutputLines)
	})

	t.Run("keeps tail bytes when over byte limit", func(t *testing.T) {
		t.Parallel()
		input := strings.Repeat("x", 100) + "\nshort\n"
		tr := exec.TruncateTail(input, 10, 20)
		assert.True(t, tr.Truncated)
		assert.Equal(t, "short\n", tr.Content)
	})

	t.Run("single oversized line yields its tail", func(t *testing.T) {
		t.Parallel()
		tr := exec.TruncateTail(strings.Repeat("ab", 50), 10, 10)
		assert.True(t, tr.Truncated)
		assert.Len(t, tr.Content, 10)
		assert.Equal(t, 1, tr.OutputLines)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		tr := exec.TruncateTail("", 10, 10)
		assert.False(t, tr.Truncated)
		assert.Empty(t, tr.Content)
	})
}
