// Package builtin provides the pass-through tools: the in-process
// implementations used when no redirection rule claims a request.
package builtin

import (
	"encoding/json"
	"fmt"

	"github.com/NekoNekoNiko120/relay"
)

func domainError(msg string) relay.ToolResult {
	return relay.ToolResult{Error: msg}
}

func textResult(text string) relay.ToolResult {
	return relay.ToolResult{Success: true, Output: text}
}

// decodeArgs converts structured tool input into a typed args struct via a
// JSON round-trip. Unknown fields are ignored; type mismatches error.
func decodeArgs(input map[string]any, dst any) error {
	raw, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode arguments: %w", err)
	}
	return nil
}
