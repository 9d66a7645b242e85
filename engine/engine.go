// Package engine implements the tool-invocation surface: every request
// enters here, the route dispatcher decides where it goes, and the result
// comes back as a structured ToolResult. Edit-class redirections run the
// preview workflow instead of direct backend invocation.
package engine

import (
	"context"

	"github.com/NekoNekoNiko120/relay"
	"github.com/NekoNekoNiko120/relay/edit"
	"github.com/NekoNekoNiko120/relay/route"
)

// Engine composes the dispatcher with the three execution paths:
// in-process runner, backend invoker, and edit orchestrator.
type Engine struct {
	dispatcher *route.Dispatcher
	runner     relay.ToolRunner
	invoker    relay.BackendInvoker
	editor     *edit.Orchestrator
	onEvent    func(relay.Event)
}

// Option configures an Engine.
type Option func(*Engine)

// WithEventHandler sets a callback that receives progress events.
// If nil or not set, events are silently discarded.
func WithEventHandler(h func(relay.Event)) Option {
	return func(e *Engine) { e.onEvent = h }
}

// New creates an Engine.
func New(dispatcher *route.Dispatcher, runner relay.ToolRunner, invoker relay.BackendInvoker, editor *edit.Orchestrator, opts ...Option) *Engine {
	e := &Engine{
		dispatcher: dispatcher,
		runner:     runner,
		invoker:    invoker,
		editor:     editor,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Invoke routes and executes one tool invocation. All errors are recovered
// into the returned ToolResult; routing failures abort before any side
// effect occurs.
func (e *Engine) Invoke(ctx context.Context, req relay.ToolRequest) relay.ToolResult {
	decision, err := e.dispatcher.Dispatch(ctx, req)
	if err != nil {
		return relay.Failure(err)
	}

	switch d := decision.(type) {
	case relay.PassThrough:
		e.emit(relay.EventPassThrough{Tool: req.Name})
		res, err := e.runner.Run(ctx, d.Request)
		if err != nil {
			return relay.Failure(err)
		}
		return res

	case relay.Redirected:
		e.emit(relay.EventRedirected{
			Tool:      req.Name,
			BackendID: d.Invocation.BackendID,
			Operation: d.Invocation.Operation,
		})
		if d.Invocation.Edit {
			proposal, err := edit.ProposalFromInput(d.Invocation.Input)
			if err != nil {
				return relay.Failure(err)
			}
			return e.editor.ProposeEdit(ctx, proposal)
		}
		res, err := e.invoker.Invoke(ctx, d.Invocation)
		if err != nil {
			return relay.Failure(err)
		}
		return res

	default:
		// Decision is sealed; this is unreachable.
		return relay.ToolResult{Error: "unknown routing decision"}
	}
}

func (e *Engine) emit(evt relay.Event) {
	if e.onEvent != nil {
		e.onEvent(evt)
	}
}
