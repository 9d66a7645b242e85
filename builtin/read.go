package builtin

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/NekoNekoNiko120/relay"
)

type readArgs struct {
	FilePath string `json:"file_path"`
	Offset   int    `json:"offset"` // 1-based line number to start from
	Limit    int    `json:"limit"`  // number of lines to read
}

// executeRead reads file contents, numbered, honoring offset and limit.
func executeRead(_ context.Context, input map[string]any) relay.ToolResult {
	var a readArgs
	if err := decodeArgs(input, &a); err != nil {
		return domainError(fmt.Sprintf("invalid arguments: %s", err))
	}

	if a.FilePath == "" {
		return domainError("file_path is required")
	}

	f, err := os.Open(a.FilePath)
	if err != nil {
		return domainError(fmt.Sprintf("failed to open file: %s", err))
	}
	defer f.Close()

	var b strings.Builder
	scanner := bufio.NewScanner(f)
	lineNum := 0
	linesRead := 0

	for scanner.Scan() {
		lineNum++

		if a.Offset > 0 && lineNum < a.Offset {
			continue
		}

		if a.Limit > 0 && linesRead >= a.Limit {
			break
		}

		fmt.Fprintf(&b, "%d\t%s\n", lineNum, scanner.Text())
		linesRead++
	}

	if err := scanner.Err(); err != nil {
		return domainError(fmt.Sprintf("error reading file: %s", err))
	}

	return textResult(b.String())
}
