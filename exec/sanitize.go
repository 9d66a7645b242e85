package exec

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Sanitize strips ANSI escape codes and control characters from command
// output. Tabs and newlines survive; CRLF normalizes to LF; a lone CR
// simulates terminal carriage-return behavior, overwriting the line from
// column 0.
func Sanitize(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\t' || r == '\n' || r == '\r' || r > 0x1F {
			b.WriteRune(r)
		}
	}
	s = b.String()

	if !strings.ContainsRune(s, '\r') {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.ContainsRune(line, '\r') {
			lines[i] = overwriteCR(line)
		}
	}
	return strings.Join(lines, "\n")
}

// overwriteCR resolves carriage returns within one line: each \r resets
// the write position to column 0 and subsequent characters overwrite.
// Trailing characters from longer previous content remain, matching
// terminal behavior.
func overwriteCR(line string) string {
	segments := strings.Split(line, "\r")
	buf := []rune(segments[0])
	for _, seg := range segments[1:] {
		for i, r := range []rune(seg) {
			if i < len(buf) {
				buf[i] = r
			} else {
				buf = append(buf, r)
			}
		}
	}
	return string(buf)
}
