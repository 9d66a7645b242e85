package builtin

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NekoNekoNiko120/relay"
)

type writeArgs struct {
	FilePath string `json:"file_path"`
	Content  string `json:"content"`
}

// executeWrite writes content to a file, creating parent directories and
// preserving existing permissions.
func executeWrite(_ context.Context, input map[string]any) relay.ToolResult {
	var a writeArgs
	if err := decodeArgs(input, &a); err != nil {
		return domainError(fmt.Sprintf("invalid arguments: %s", err))
	}

	if a.FilePath == "" {
		return domainError("file_path is required")
	}

	if err := os.MkdirAll(filepath.Dir(a.FilePath), 0o755); err != nil {
		return domainError(fmt.Sprintf("failed to create directories: %s", err))
	}

	perm := os.FileMode(0o644)
	if info, err := os.Stat(a.FilePath); err == nil {
		perm = info.Mode().Perm()
	}

	if err := os.WriteFile(a.FilePath, []byte(a.Content), perm); err != nil {
		return domainError(fmt.Sprintf("failed to write file: %s", err))
	}

	return textResult(fmt.Sprintf("wrote %d bytes to %s", len(a.Content), a.FilePath))
}
