package bubbletea

import (
	"fmt"
	"strings"

	rw "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/NekoNekoNiko120/relay/diff"
)

// RenderDiff formats an edit script for terminal display: a line-number
// gutter, +/- markers colored per theme, context lines muted. Lines wider
// than width are clipped, never wrapped, so the diff columns stay aligned.
func RenderDiff(ops []diff.Op, styles Styles, width int) string {
	if len(ops) == 0 {
		return styles.Muted.Render("(no changes)")
	}

	// Gutter: line number, marker, one space.
	numWidth := numberWidth(ops)
	contentWidth := width - numWidth - 3
	if contentWidth < 10 {
		contentWidth = 10
	}

	var b strings.Builder
	for i, op := range ops {
		if i > 0 {
			b.WriteString("\n")
		}

		var lineNo int
		var marker string
		var style func(...string) string
		switch op.Kind {
		case diff.OpAdd:
			lineNo = op.NewIdx
			marker = "+"
			style = styles.Added.Render
		case diff.OpDelete:
			lineNo = op.OrigIdx
			marker = "-"
			style = styles.Deleted.Render
		default:
			lineNo = op.OrigIdx
			marker = " "
			style = styles.Context.Render
		}

		content := clip(op.Content, contentWidth)
		b.WriteString(styles.LineNo.Render(fmt.Sprintf("%*d ", numWidth, lineNo)))
		b.WriteString(style(marker + " " + content))
	}
	return b.String()
}

// numberWidth returns the gutter width needed for the largest line number.
func numberWidth(ops []diff.Op) int {
	maxNo := 1
	for _, op := range ops {
		if op.OrigIdx > maxNo {
			maxNo = op.OrigIdx
		}
		if op.NewIdx > maxNo {
			maxNo = op.NewIdx
		}
	}
	return len(fmt.Sprintf("%d", maxNo))
}

// clip truncates content to the given display width, grapheme-aware.
func clip(content string, width int) string {
	if uniseg.StringWidth(content) <= width {
		return content
	}
	return rw.Truncate(content, width, "…")
}
