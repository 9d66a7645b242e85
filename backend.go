package relay

import "context"

// Backend is one connected capability provider. The backend set changes
// over the process lifetime as providers connect and disconnect; the engine
// only reads it.
type Backend struct {
	ID    string
	Kind  string
	Alive bool
}

// BackendLister reports the currently connected backends. Implementations
// are owned by the connectivity collaborator; the engine queries a fresh
// list per dispatch and never caches beyond it.
type BackendLister interface {
	ListActive(ctx context.Context) ([]Backend, error)
}

// BackendInvoker sends a redirected invocation to its resolved backend and
// returns the backend's result. Backend execution itself is external to the
// engine.
type BackendInvoker interface {
	Invoke(ctx context.Context, inv RedirectedInvocation) (ToolResult, error)
}
