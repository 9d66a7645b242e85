package relay

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	Added   int // Added diff lines
	Deleted int // Deleted diff lines
	Context int // Unchanged diff lines
	Error   int // Error messages
	Success int // Success indicators
	Muted   int // Status bar, line numbers
	Accent  int // Headings, target names
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Added:   2,
		Deleted: 1,
		Context: 8,
		Error:   1,
		Success: 2,
		Muted:   8,
		Accent:  5,
	}
}
