package bubbletea_test

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NekoNekoNiko120/relay"
	bt "github.com/NekoNekoNiko120/relay/bubbletea"
	"github.com/NekoNekoNiko120/relay/diff"
)

func sampleOps() []diff.Op {
	return []diff.Op{
		{Kind: diff.OpEqual, OrigIdx: 1, NewIdx: 1, Content: "a"},
		{Kind: diff.OpDelete, OrigIdx: 2, Content: "b"},
		{Kind: diff.OpAdd, NewIdx: 2, Content: "x"},
		{Kind: diff.OpEqual, OrigIdx: 3, NewIdx: 3, Content: "c"},
	}
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T) bt.Model {
	t.Helper()
	m := bt.New("Apply proposed edit to **main.go**?", "main.go", sampleOps(), relay.DefaultTheme())
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestModel_Update(t *testing.T) {
	t.Parallel()

	t.Run("undecided before any key", func(t *testing.T) {
		t.Parallel()
		m := initModel(t)
		assert.False(t, m.Decided())
		assert.False(t, m.Approved())
	})

	t.Run("approve keys", func(t *testing.T) {
		t.Parallel()
		for _, key := range []string{"y", "Y", "enter"} {
			m := initModel(t)
			updated, cmd := m.Update(keyMsg(key))
			model := updated.(bt.Model)
			assert.True(t, model.Decided(), key)
			assert.True(t, model.Approved(), key)
			assert.NotNil(t, cmd, key)
		}
	})

	t.Run("reject keys", func(t *testing.T) {
		t.Parallel()
		for _, key := range []string{"n", "N", "q", "esc"} {
			m := initModel(t)
			updated, cmd := m.Update(keyMsg(key))
			model := updated.(bt.Model)
			assert.True(t, model.Decided(), key)
			assert.False(t, model.Approved(), key)
			assert.NotNil(t, cmd, key)
		}
	})

	t.Run("other keys do not decide", func(t *testing.T) {
		t.Parallel()
		m := initModel(t)
		updated, _ := m.Update(keyMsg("j"))
		model := updated.(bt.Model)
		assert.False(t, model.Decided())
	})
}

func TestModel_View(t *testing.T) {
	t.Parallel()

	t.Run("shows placeholder before window size", func(t *testing.T) {
		t.Parallel()
		m := bt.New("msg", "main.go", nil, relay.DefaultTheme())
		assert.Contains(t, m.View(), "Loading preview")
	})

	t.Run("shows target, counts, diff and key help", func(t *testing.T) {
		t.Parallel()
		view := ansi.Strip(initModel(t).View())
		assert.Contains(t, view, "Proposed edit: main.go")
		assert.Contains(t, view, "+1")
		assert.Contains(t, view, "-1")
		assert.Contains(t, view, "- b")
		assert.Contains(t, view, "+ x")
		assert.Contains(t, view, "y apply")
	})
}

func TestRenderDiff(t *testing.T) {
	t.Parallel()

	styles := bt.NewStyles(relay.DefaultTheme())

	t.Run("markers and line numbers", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(bt.RenderDiff(sampleOps(), styles, 80))
		assert.Contains(t, out, "1   a")
		assert.Contains(t, out, "2 - b")
		assert.Contains(t, out, "2 + x")
		assert.Contains(t, out, "3   c")
	})

	t.Run("empty script", func(t *testing.T) {
		t.Parallel()
		out := ansi.Strip(bt.RenderDiff(nil, styles, 80))
		assert.Contains(t, out, "no changes")
	})

	t.Run("long lines are clipped not wrapped", func(t *testing.T) {
		t.Parallel()
		ops := []diff.Op{{Kind: diff.OpAdd, NewIdx: 1, Content: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}}
		out := ansi.Strip(bt.RenderDiff(ops, styles, 20))
		assert.NotContains(t, out, "\n")
		assert.Contains(t, out, "…")
	})
}

func TestModel_EndToEnd(t *testing.T) {
	t.Parallel()

	m := bt.New("Apply proposed edit to **main.go**?", "main.go", sampleOps(), relay.DefaultTheme())
	tm := teatest.NewTestModel(t, m,
		teatest.WithInitialTermSize(80, 24),
	)

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Proposed edit: main.go")) &&
			bytes.Contains(out, []byte("y apply"))
	}, teatest.WithDuration(5*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(5*time.Second))
	final, ok := fm.(bt.Model)
	require.True(t, ok)
	assert.True(t, final.Decided())
	assert.True(t, final.Approved())
}
