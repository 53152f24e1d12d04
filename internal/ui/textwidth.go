package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Display width helpers. All widths are in screen columns, not bytes.

// RuneWidth returns the display width of a single rune. Control and combining
// characters are 0, wide characters (CJK, emoji) are 2.
func RuneWidth(r rune) int {
	return max(runewidth.RuneWidth(r), 0)
}

// StringWidth returns the display width of a string
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateToWidth cuts s so it fits in maxWidth columns without splitting a
// wide rune.
func TruncateToWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	width := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if width+rw > maxWidth {
			return s[:i]
		}
		width += rw
	}

	return s
}

// TruncateToWidthWithEllipsis truncates s and ends it with "..." when it does
// not fit in maxWidth.
func TruncateToWidthWithEllipsis(s string, maxWidth int) string {
	if StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return TruncateToWidth(s, maxWidth)
	}
	return TruncateToWidth(s, maxWidth-3) + "..."
}

// PadStringToWidth right-pads s with spaces to exactly width columns,
// truncating when it is longer.
func PadStringToWidth(s string, width int) string {
	s = TruncateToWidth(s, width)
	if w := StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
