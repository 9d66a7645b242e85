package relay

import "fmt"

// TransformFamily selects the parameter rewrite strategy for a rule. Each
// family declares its accepted field aliases once; historically tools have
// used several names for the same field, and a transform must accept the
// union of them.
type TransformFamily int

const (
	// TransformWrite covers write-like tools: a path and new content.
	TransformWrite TransformFamily = iota
	// TransformRead covers read-like tools: a path only.
	TransformRead
	// TransformMove covers move-like tools: a source and a destination.
	TransformMove
	// TransformCommand covers command-like tools: a command string.
	TransformCommand
)

// String returns the family name used in error messages and config files.
func (f TransformFamily) String() string {
	switch f {
	case TransformWrite:
		return "write"
	case TransformRead:
		return "read"
	case TransformMove:
		return "move"
	case TransformCommand:
		return "command"
	default:
		return fmt.Sprintf("TransformFamily(%d)", int(f))
	}
}

// Transform rewrites tool input into a backend's schema. The zero value is
// a write-like transform.
type Transform struct {
	Family TransformFamily
}

// Accepted aliases per canonical field, in priority order. The first alias
// present in the input wins.
var (
	pathAliases        = []string{"path", "file_path", "filepath", "file"}
	contentAliases     = []string{"content", "file_text", "text", "new_content"}
	sourceAliases      = []string{"source", "src", "old_path", "from"}
	destinationAliases = []string{"destination", "dest", "new_path", "to"}
	commandAliases     = []string{"command", "cmd", "script"}
)

// Apply rewrites input into canonical field names for the transform's
// family. Fields not consumed by an alias pass through unchanged. A missing
// required field is an ErrTransform naming the family and field.
func (t Transform) Apply(input map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(input))
	consumed := make(map[string]bool)

	resolve := func(canonical string, aliases []string, required bool) error {
		for _, alias := range aliases {
			if v, ok := input[alias]; ok {
				out[canonical] = v
				for _, a := range aliases {
					consumed[a] = true
				}
				return nil
			}
		}
		if required {
			return fmt.Errorf("%s transform: no %s field (accepted: %v): %w",
				t.Family, canonical, aliases, ErrTransform)
		}
		return nil
	}

	var err error
	switch t.Family {
	case TransformWrite:
		if err = resolve("path", pathAliases, true); err == nil {
			err = resolve("content", contentAliases, true)
		}
	case TransformRead:
		err = resolve("path", pathAliases, true)
	case TransformMove:
		if err = resolve("source", sourceAliases, true); err == nil {
			err = resolve("destination", destinationAliases, true)
		}
	case TransformCommand:
		err = resolve("command", commandAliases, true)
	default:
		err = fmt.Errorf("unknown transform family %d: %w", int(t.Family), ErrTransform)
	}
	if err != nil {
		return nil, err
	}

	for k, v := range input {
		if !consumed[k] {
			out[k] = v
		}
	}
	return out, nil
}
