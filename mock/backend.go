// Package mock provides test doubles for relay interfaces using function fields.
package mock

import (
	"context"

	"github.com/NekoNekoNiko120/relay"
)

// Interface compliance checks.
var (
	_ relay.BackendLister  = (*BackendLister)(nil)
	_ relay.BackendInvoker = (*BackendInvoker)(nil)
)

// BackendLister is a test double for relay.BackendLister.
// Set ListActiveFn, or Backends for a static set.
type BackendLister struct {
	ListActiveFn func(ctx context.Context) ([]relay.Backend, error)
	Backends     []relay.Backend
}

// ListActive delegates to ListActiveFn when set, else returns Backends.
func (l *BackendLister) ListActive(ctx context.Context) ([]relay.Backend, error) {
	if l.ListActiveFn != nil {
		return l.ListActiveFn(ctx)
	}
	return l.Backends, nil
}

// BackendInvoker is a test double for relay.BackendInvoker.
// Set InvokeFn before calling Invoke.
type BackendInvoker struct {
	InvokeFn func(ctx context.Context, inv relay.RedirectedInvocation) (relay.ToolResult, error)
}

// Invoke delegates to InvokeFn.
func (b *BackendInvoker) Invoke(ctx context.Context, inv relay.RedirectedInvocation) (relay.ToolResult, error) {
	return b.InvokeFn(ctx, inv)
}
