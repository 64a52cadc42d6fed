package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PadRight pads s with spaces to width, truncating first when s is
// already wider. Widths are ANSI-aware.
func PadRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// FitHeight clips or pads s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
