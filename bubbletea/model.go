package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/NekoNekoNiko120/relay"
	"github.com/NekoNekoNiko120/relay/diff"
	"github.com/NekoNekoNiko120/relay/markdown"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the approval prompt. The scrollable
// viewport shows the merge message followed by the proposed diff; a single
// keypress decides the outcome.
type Model struct {
	// Viewport is the scrollable diff area. Exported for test access.
	Viewport viewport.Model

	message  string
	targetID string
	ops      []diff.Op
	theme    relay.Theme
	styles   Styles

	approved bool
	decided  bool
	ready    bool
}

// New creates a prompt Model for one approval request.
func New(message, targetID string, ops []diff.Op, theme relay.Theme) Model {
	return Model{
		message:  message,
		targetID: targetID,
		ops:      ops,
		theme:    theme,
		styles:   NewStyles(theme),
	}
}

// Approved reports the user's decision. False until a key decides.
func (m Model) Approved() bool { return m.decided && m.approved }

// Decided reports whether a decision key was pressed.
func (m Model) Decided() bool { return m.decided }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "Y", "enter":
			m.decided = true
			m.approved = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.decided = true
			m.approved = false
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading preview..."
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("y apply · n reject · ↑/↓ scroll"))
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	headerHeight := 1
	footerHeight := 1
	borderHeight := 2 // newlines between sections
	vpHeight := msg.Height - headerHeight - footerHeight - borderHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	m.Viewport.SetContent(m.renderContent(msg.Width))
	return m
}

func (m Model) header() string {
	added, deleted := diff.Counts(m.ops)
	return m.styles.Accent.Render(fmt.Sprintf("Proposed edit: %s", m.targetID)) +
		" " +
		m.styles.Added.Render(fmt.Sprintf("+%d", added)) +
		" " +
		m.styles.Deleted.Render(fmt.Sprintf("-%d", deleted))
}

func (m Model) renderContent(width int) string {
	var b strings.Builder
	if m.message != "" {
		b.WriteString(markdown.Render(m.message, width, m.theme))
		b.WriteString("\n\n")
	}
	b.WriteString(RenderDiff(m.ops, m.styles, width))
	return b.String()
}
