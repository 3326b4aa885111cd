package widgets

import "github.com/charmbracelet/lipgloss"

// Palette is the small set of colors the hosts draw with.
type Palette struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Border    lipgloss.Color
	Accent    lipgloss.Color
	Highlight lipgloss.Color
	Selected  lipgloss.Color
}

// Catppuccin Mocha
var DefaultPalette = Palette{
	Text:      "#cdd6f4",
	Muted:     "#6c7086",
	Border:    "#585b70",
	Accent:    "#f5c2e7",
	Highlight: "#b4befe",
	Selected:  "#a6e3a1",
}

func (p Palette) orDefault() Palette {
	if p == (Palette{}) {
		return DefaultPalette
	}
	return p
}
