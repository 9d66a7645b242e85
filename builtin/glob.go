package builtin

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/NekoNekoNiko120/relay"
	"github.com/bmatcuk/doublestar/v4"
)

type globArgs struct {
	Pattern string `json:"pattern"`
	Path    string `json:"path"`
}

// executeGlob lists files matching a doublestar pattern under a base
// directory. Directories are excluded; paths are relative to the base.
func executeGlob(_ context.Context, input map[string]any) relay.ToolResult {
	var a globArgs
	if err := decodeArgs(input, &a); err != nil {
		return domainError(fmt.Sprintf("invalid arguments: %s", err))
	}

	if a.Pattern == "" {
		return domainError("pattern is required")
	}
	if a.Path == "" {
		a.Path = "."
	}

	info, err := os.Stat(a.Path)
	if err != nil {
		return domainError(fmt.Sprintf("failed to access path: %s", err))
	}
	if !info.IsDir() {
		return domainError(fmt.Sprintf("not a directory: %s", a.Path))
	}

	var matches []string
	err = doublestar.GlobWalk(os.DirFS(a.Path), a.Pattern, func(path string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		matches = append(matches, filepath.FromSlash(path))
		return nil
	})
	if err != nil {
		return domainError(fmt.Sprintf("invalid glob pattern: %s", err))
	}

	if len(matches) == 0 {
		return textResult("no files found")
	}

	return textResult(strings.Join(matches, "\n") + "\n")
}
