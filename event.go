package relay

// Event is a sealed interface representing engine progress. Events are
// purely informational; failures come from results and errors, not events.
// The unexported marker method prevents external implementations.
type Event interface {
	event()
}

// EventRedirected signals that a tool invocation was routed to a backend.
type EventRedirected struct {
	Tool      string
	BackendID string
	Operation string
}

func (EventRedirected) event() {}

// EventPassThrough signals that a tool invocation ran in-process.
type EventPassThrough struct {
	Tool string
}

func (EventPassThrough) event() {}

// EventPreviewOpened signals that a preview session entered Previewing and
// its diff is available for rendering.
type EventPreviewOpened struct {
	TargetID string
	Added    int
	Deleted  int
}

func (EventPreviewOpened) event() {}

// EventCommitted signals that a preview session was committed.
type EventCommitted struct {
	TargetID string
}

func (EventCommitted) event() {}

// EventReverted signals that a preview session was reverted and the target
// restored to its pre-preview content.
type EventReverted struct {
	TargetID string
	Reason   string
}

func (EventReverted) event() {}

// Interface compliance checks.
var (
	_ Event = EventRedirected{}
	_ Event = EventPassThrough{}
	_ Event = EventPreviewOpened{}
	_ Event = EventCommitted{}
	_ Event = EventReverted{}
)
