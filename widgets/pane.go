package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a rounded border with an inline title around Content.
type Pane struct {
	Title   string
	Content string
	Focused bool
	Palette Palette
}

func (p Pane) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	h := max(3, height)
	width = max(4, width)

	pal := p.Palette.orDefault()
	border := pal.Border
	if p.Focused {
		border = pal.Accent
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(pal.Text).Bold(true)

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	titleText := " " + strings.TrimSpace(p.Title) + " "
	if strings.TrimSpace(p.Title) == "" {
		titleText = ""
	}
	if ansi.StringWidth(titleText) > innerWidth {
		titleText = " " + ansi.Truncate(strings.TrimSpace(p.Title), max(1, innerWidth-2), "") + " "
	}
	dashes := max(0, innerWidth-ansi.StringWidth(titleText))
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭"+strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)+"╮")

	lines := strings.Split(p.Content, "\n")
	rows := make([]string, 0, h)
	rows = append(rows, top)
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		rows = append(rows, v+" "+PadRight(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// Inner returns the content box a Pane of the given outer size leaves.
func (Pane) Inner(width, height int) (int, int) {
	return max(1, max(4, width)-4), max(1, max(3, height)-2)
}
