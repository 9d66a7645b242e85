package main

import (
	"context"
	"fmt"

	"github.com/NekoNekoNiko120/relay"
)

// Compile-time interface checks.
var (
	_ relay.BackendLister  = (*staticLister)(nil)
	_ relay.BackendInvoker = (*localInvoker)(nil)
)

// staticLister serves a fixed backend set. The CLI has no dynamic backend
// connectivity; the local backends are always alive.
type staticLister struct {
	backends []relay.Backend
}

func (l *staticLister) ListActive(context.Context) ([]relay.Backend, error) {
	out := make([]relay.Backend, len(l.backends))
	copy(out, l.backends)
	return out, nil
}

// localBackends is the CLI's backend set: one filesystem backend and one
// shell backend, both served in-process.
func localBackends() *staticLister {
	return &staticLister{backends: []relay.Backend{
		{ID: "local-fs", Kind: "filesystem", Alive: true},
		{ID: "local-shell", Kind: "shell", Alive: true},
	}}
}

// localOperation maps a backend operation to a builtin tool, renaming
// canonical input fields to the tool's argument names.
type localOperation struct {
	tool   string
	rename map[string]string
}

var localOperations = map[string]localOperation{
	"fs.read":  {tool: "read", rename: map[string]string{"path": "file_path"}},
	"fs.write": {tool: "write", rename: map[string]string{"path": "file_path"}},
	"sh.exec":  {tool: "bash"},
}

// localInvoker serves redirected invocations with the in-process tool
// runner, translating backend operation names to builtin tools.
type localInvoker struct {
	runner relay.ToolRunner
}

func (i *localInvoker) Invoke(ctx context.Context, inv relay.RedirectedInvocation) (relay.ToolResult, error) {
	op, ok := localOperations[inv.Operation]
	if !ok {
		return relay.Failure(fmt.Errorf("backend %s has no operation %q", inv.BackendID, inv.Operation)), nil
	}

	input := make(map[string]any, len(inv.Input))
	for k, v := range inv.Input {
		if renamed, ok := op.rename[k]; ok {
			k = renamed
		}
		input[k] = v
	}
	return i.runner.Run(ctx, relay.ToolRequest{Name: op.tool, Input: input})
}
