package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Popup is a bordered card drawn over whatever is already on screen.
type Popup struct {
	Body    string
	Palette Palette
}

// Over centers the card on base and returns a width x height canvas. Base
// content around the card stays visible.
func (p Popup) Over(base string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Palette.orDefault().Accent).
		Padding(1, 2).
		MaxWidth(width).
		MaxHeight(height).
		Render(p.Body)

	rows := strings.Split(Clip(base, width, height), "\n")
	cardRows := strings.Split(card, "\n")
	x := max(0, (width-lipgloss.Width(card))/2)
	y := max(0, (height-len(cardRows))/2)
	for i, r := range cardRows {
		if y+i >= height {
			break
		}
		rows[y+i] = splice(rows[y+i], r, x, width)
	}
	return strings.Join(rows, "\n")
}

// splice writes over onto line starting at column x.
func splice(line, over string, x, width int) string {
	left := ansi.Truncate(line, x, "")
	head := ansi.Truncate(line, x+ansi.StringWidth(over), "")
	right := strings.TrimPrefix(line, head)
	return PadRight(PadRight(left, x)+over+right, width)
}
