// Package bubbletea provides the interactive approval prompt: a Bubble Tea
// program that shows the proposed edit as a unified diff and waits for the
// user to apply or reject it.
package bubbletea

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NekoNekoNiko120/relay"
	"github.com/NekoNekoNiko120/relay/diff"
	"github.com/NekoNekoNiko120/relay/preview"
)

// Ensure type implements interface.
var _ relay.Approver = (*Approver)(nil)

// Approver implements [relay.Approver] by running an interactive prompt per
// request. The edit script for the diff panel comes from the target's live
// preview session.
type Approver struct {
	sessions *preview.Registry
	theme    relay.Theme
	progOpts []tea.ProgramOption
}

// ApproverOption configures an [Approver].
type ApproverOption func(*Approver)

// WithProgramOptions adds Bubble Tea program options. Tests use it to attach
// custom input and output.
func WithProgramOptions(opts ...tea.ProgramOption) ApproverOption {
	return func(a *Approver) { a.progOpts = append(a.progOpts, opts...) }
}

// NewApprover creates an interactive [Approver].
func NewApprover(sessions *preview.Registry, theme relay.Theme, opts ...ApproverOption) *Approver {
	a := &Approver{
		sessions: sessions,
		theme:    theme,
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// RequestApproval runs the prompt and blocks until the user decides or the
// context is cancelled. Cancellation rejects the edit and surfaces the
// context error.
func (a *Approver) RequestApproval(ctx context.Context, message, targetID string) (bool, error) {
	var ops []diff.Op
	if sess, ok := a.sessions.Active(targetID); ok {
		ops = sess.Ops()
	}

	p := tea.NewProgram(New(message, targetID, ops, a.theme), a.progOpts...)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	out, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("approval prompt: %w", err)
	}
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	final, ok := out.(Model)
	if !ok {
		return false, fmt.Errorf("approval prompt returned unexpected model %T", out)
	}
	return final.Approved(), nil
}
