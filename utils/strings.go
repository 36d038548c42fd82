package utils

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Wrap breaks text into lines no wider than width terminal cells, splitting
// only where the Unicode line breaking rules allow it. Mandatory breaks
// (newlines) are kept. A single segment wider than width is left whole on its
// own line. A width below 1 disables wrapping.
func Wrap(text string, width int) []string {
	if width < 1 {
		return strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	}

	var (
		lines     []string
		line      strings.Builder
		lineWidth int
		segment   string
		mustBreak bool
	)
	state := -1
	rest := text
	for len(rest) > 0 {
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)

		// Trailing spaces may hang past the edge, so they don't count towards
		// the width when deciding whether the segment fits.
		visible := strings.TrimRight(segment, " \r\n")
		segWidth := uniseg.StringWidth(visible)
		if lineWidth > 0 && lineWidth+segWidth > width {
			lines = append(lines, strings.TrimRight(line.String(), " "))
			line.Reset()
			lineWidth = 0
		}

		line.WriteString(segment)
		lineWidth += uniseg.StringWidth(strings.TrimRight(segment, "\r\n"))

		if mustBreak {
			lines = append(lines, strings.TrimRight(line.String(), " \r\n"))
			line.Reset()
			lineWidth = 0
		}
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}

	return lines
}
