package relay

import "errors"

// Sentinel errors for the engine's failure taxonomy. All failures are
// recovered into a ToolResult at the engine boundary; these sentinels let
// callers and tests classify them with errors.Is.
var (
	// ErrValidation indicates a request or rule failed validation.
	ErrValidation = errors.New("validation error")

	// ErrConfiguration indicates a bad or missing redirection rule.
	// Fatal at load time, surfaced immediately.
	ErrConfiguration = errors.New("configuration error")

	// ErrBackendUnavailable indicates no live backend of the required kind.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrTransform indicates a required input field was absent after alias
	// resolution. The invocation aborts before any side effect.
	ErrTransform = errors.New("transform error")

	// ErrPath indicates the edit target is missing or is a directory.
	ErrPath = errors.New("path error")

	// ErrNotFound indicates the requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrSessionConflict indicates another preview is in flight for the
	// same target. The caller may retry after it resolves.
	ErrSessionConflict = errors.New("session conflict")

	// ErrSessionState indicates a session transition from an invalid state.
	ErrSessionState = errors.New("invalid session state")

	// ErrTimeout indicates the remote merge service exceeded its deadline.
	ErrTimeout = errors.New("timeout")

	// ErrNetwork indicates the remote merge service was unreachable.
	ErrNetwork = errors.New("network error")

	// ErrParse indicates a malformed or empty remote merge response.
	ErrParse = errors.New("parse error")

	// ErrUserRejected indicates the user declined the proposed edit.
	// A benign outcome: the document is reverted and the caller informed.
	ErrUserRejected = errors.New("rejected by user")
)
