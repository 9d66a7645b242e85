package exec

import "strings"

const (
	DefaultMaxLines = 2000
	DefaultMaxBytes = 50 * 1024 // 50KB
)

// TruncateResult describes the outcome of tail truncation.
type TruncateResult struct {
	Content     string
	Truncated   bool
	TotalLines  int
	OutputLines int
}

// TruncateTail keeps the last maxLines lines or maxBytes bytes of input,
// whichever limit is hit first, working backwards from the end collecting
// complete lines. A single line larger than maxBytes yields its tail.
func TruncateTail(s string, maxLines, maxBytes int) TruncateResult {
	if s == "" {
		return TruncateResult{}
	}

	hadNewline := strings.HasSuffix(s, "\n")
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	total := len(lines)

	if total <= maxLines && len(s) <= maxBytes {
		return TruncateResult{Content: s, TotalLines: total, OutputLines: total}
	}

	budget := maxBytes
	if hadNewline {
		budget--
	}

	var kept []string
	used := 0
	for i := total - 1; i >= 0 && len(kept) < maxLines; i-- {
		cost := len(lines[i])
		if len(kept) > 0 {
			cost++ // joining newline
		}
		if used+cost > budget {
			if len(kept) == 0 {
				// Single oversized line: keep its tail without a newline.
				tail := lines[i]
				if len(tail) > maxBytes {
					tail = tail[len(tail)-maxBytes:]
				}
				return TruncateResult{
					Content:     tail,
					Truncated:   true,
					TotalLines:  total,
					OutputLines: 1,
				}
			}
			break
		}
		kept = append(kept, lines[i])
		used += cost
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	content := strings.Join(kept, "\n")
	if hadNewline {
		content += "\n"
	}
	return TruncateResult{
		Content:     content,
		Truncated:   true,
		TotalLines:  total,
		OutputLines: len(kept),
	}
}
