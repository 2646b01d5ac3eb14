package dataset

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal cells s occupies
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Fit pads or truncates s to exactly width terminal cells
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = strings.ReplaceAll(s, "\n", " ")
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}

// Cut returns the terminal cells [from, to) of s. A wide rune split by either
// bound is replaced with spaces so the result is exactly to-from cells.
func Cut(s string, from, to int) string {
	if to <= from {
		return ""
	}
	var b strings.Builder
	pos := 0
	for _, r := range s {
		if pos >= to {
			break
		}
		w := runewidth.RuneWidth(r)
		switch {
		case pos >= from && pos+w <= to:
			b.WriteRune(r)
		case pos+w > from:
			// Partially inside the range
			b.WriteString(strings.Repeat(" ", min(pos+w, to)-max(pos, from)))
		}
		pos += w
	}
	if pos < to {
		b.WriteString(strings.Repeat(" ", to-max(pos, from)))
	}
	return b.String()
}
