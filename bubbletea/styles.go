package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/NekoNekoNiko120/relay"
)

// Styles maps a Theme to lipgloss styles for prompt rendering.
type Styles struct {
	Added   lipgloss.Style
	Deleted lipgloss.Style
	Context lipgloss.Style
	LineNo  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t relay.Theme) Styles {
	return Styles{
		Added:   lipgloss.NewStyle().Foreground(ansiColor(t.Added)),
		Deleted: lipgloss.NewStyle().Foreground(ansiColor(t.Deleted)),
		Context: lipgloss.NewStyle().Foreground(ansiColor(t.Context)),
		LineNo:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Error:   lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success: lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:   lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
