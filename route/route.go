// Package route decides where tool invocations go: pass-through to the
// in-process runner, or redirection to a connected backend. Decisions are
// pure — no side effects occur here.
package route
