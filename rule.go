package relay

// RedirectionRule maps one source tool name to a backend operation plus a
// parameter transform. The rule set is loaded once at startup and read-only
// thereafter; duplicate SourceTool entries are a configuration error
// reported at load time.
type RedirectionRule struct {
	// SourceTool is the tool name the rule applies to. Unique per rule set.
	SourceTool string

	// TargetKind is the backend kind required to serve the invocation.
	TargetKind string

	// TargetOperation is the operation name in the backend's schema.
	TargetOperation string

	// PreferredBackend is the backend ID named by the rule. When it is not
	// alive, any live backend of TargetKind may serve instead.
	PreferredBackend string

	// Transform rewrites the source tool's input into the backend's schema.
	Transform Transform

	// Edit marks file-editing tools that go through the preview workflow
	// instead of direct backend invocation.
	Edit bool
}

// RedirectedInvocation is the result of a successful redirection. It is
// never constructed unless a backend of the required kind is alive.
type RedirectedInvocation struct {
	BackendID string
	Operation string
	Input     map[string]any
	Edit      bool
}

// Decision is a sealed interface representing a routing decision: either
// pass the request through to the in-process runner or redirect it to a
// backend. The unexported marker method prevents external implementations.
type Decision interface {
	decision()
}

// PassThrough routes the request to the in-process tool runner unchanged.
type PassThrough struct {
	Request ToolRequest
}

func (PassThrough) decision() {}

// Redirected routes the request to a resolved backend.
type Redirected struct {
	Invocation RedirectedInvocation
}

func (Redirected) decision() {}

// Interface compliance checks.
var (
	_ Decision = PassThrough{}
	_ Decision = Redirected{}
)
