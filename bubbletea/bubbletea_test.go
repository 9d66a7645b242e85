package bubbletea_test

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NekoNekoNiko120/relay"
	bt "github.com/NekoNekoNiko120/relay/bubbletea"
	"github.com/NekoNekoNiko120/relay/mock"
	"github.com/NekoNekoNiko120/relay/preview"
)

// previewRegistry returns a registry with an active previewing session for
// main.go, so the approver has an edit script to show.
func previewRegistry(t *testing.T) *preview.Registry {
	t.Helper()
	store := &mock.DocumentStore{
		ReplaceLinesFn: func(context.Context, string, []string) error { return nil },
	}
	reg := preview.NewRegistry(store)
	sess, err := reg.Create("main.go", []string{"a", "b", "c"})
	require.NoError(t, err)
	_, err = sess.EnterPreview(context.Background(), []string{"a", "x", "c"})
	require.NoError(t, err)
	return reg
}

func TestApprover_RequestApproval(t *testing.T) {
	t.Parallel()

	t.Run("y approves", func(t *testing.T) {
		t.Parallel()
		a := bt.NewApprover(previewRegistry(t), relay.DefaultTheme(),
			bt.WithProgramOptions(
				tea.WithInput(strings.NewReader("y")),
				tea.WithOutput(io.Discard),
				tea.WithoutRenderer(),
			),
		)

		ok, err := a.RequestApproval(context.Background(), "apply edit?", "main.go")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("n rejects", func(t *testing.T) {
		t.Parallel()
		a := bt.NewApprover(previewRegistry(t), relay.DefaultTheme(),
			bt.WithProgramOptions(
				tea.WithInput(strings.NewReader("n")),
				tea.WithOutput(io.Discard),
				tea.WithoutRenderer(),
			),
		)

		ok, err := a.RequestApproval(context.Background(), "apply edit?", "main.go")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("context cancellation rejects with context error", func(t *testing.T) {
		t.Parallel()
		// Input that never delivers a key, so only cancellation can end the prompt.
		r, w := io.Pipe()
		defer w.Close()

		a := bt.NewApprover(previewRegistry(t), relay.DefaultTheme(),
			bt.WithProgramOptions(
				tea.WithInput(r),
				tea.WithOutput(io.Discard),
				tea.WithoutRenderer(),
			),
		)

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(50 * time.Millisecond)
			cancel()
		}()

		ok, err := a.RequestApproval(ctx, "apply edit?", "main.go")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, ok)
	})

	t.Run("missing session still prompts", func(t *testing.T) {
		t.Parallel()
		store := &mock.DocumentStore{}
		a := bt.NewApprover(preview.NewRegistry(store), relay.DefaultTheme(),
			bt.WithProgramOptions(
				tea.WithInput(strings.NewReader("y")),
				tea.WithOutput(io.Discard),
				tea.WithoutRenderer(),
			),
		)

		ok, err := a.RequestApproval(context.Background(), "apply edit?", "other.go")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
