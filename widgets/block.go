package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Text is a pre-rendered block.
type Text string

// Render clips t to exactly width x height cells.
func (t Text) Render(width, height int) string {
	return Clip(string(t), width, height)
}

// Clip pads or cuts s to height lines of width cells each.
func Clip(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.SplitN(s, "\n", height+1)
	out := make([]string, height)
	for i := range out {
		var line string
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = PadRight(line, width)
	}
	return strings.Join(out, "\n")
}

// JoinColumns places blocks side by side, padding each to its width. Short
// blocks are filled with blank lines.
func JoinColumns(blocks []string, widths []int, gap int) string {
	cols := make([][]string, len(blocks))
	height := 0
	for i, b := range blocks {
		cols[i] = strings.Split(b, "\n")
		height = max(height, len(cols[i]))
	}
	sep := strings.Repeat(" ", max(0, gap))
	var b strings.Builder
	for y := range height {
		if y > 0 {
			b.WriteByte('\n')
		}
		for i, col := range cols {
			if i > 0 {
				b.WriteString(sep)
			}
			var cell string
			if y < len(col) {
				cell = col[y]
			}
			b.WriteString(PadRight(cell, widths[i]))
		}
	}
	return b.String()
}

// PadRight truncates or pads s to exactly width terminal cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
