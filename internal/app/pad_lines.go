package app

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// padFrame pads every line of view to width and appends blank lines up to
// height, so a shorter screen fully overwrites the previous one.
func padFrame(view string, width, height int) string {
	lines := strings.Split(view, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	for i, line := range lines {
		if lineWidth := xansi.StringWidth(line); lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}
	return strings.Join(lines, "\n")
}
