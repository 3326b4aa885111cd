// Package geom holds the coordinate and size types shared by every container
// kind. A Position means the same logical cell whether it is rendered by a
// list or a grid.
package geom

import "fmt"

// Position identifies one content unit: an item inside a section.
type Position struct {
	Section int
	Item    int
}

// At returns the position of item inside section.
func At(section, item int) Position {
	return Position{Section: section, Item: item}
}

func (p Position) String() string {
	return fmt.Sprintf("[%d, %d]", p.Section, p.Item)
}

// Valid reports whether both indices are non-negative.
func (p Position) Valid() bool {
	return p.Section >= 0 && p.Item >= 0
}

// Before orders positions section first.
func (p Position) Before(o Position) bool {
	if p.Section != o.Section {
		return p.Section < o.Section
	}
	return p.Item < o.Item
}

// Size is a width/height pair. List containers only read Height.
type Size struct {
	Width  float64
	Height float64
}

func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// Cells rounds both dimensions up to whole terminal cells, never below 1.
func (s Size) Cells() (width, height int) {
	return ceilCells(s.Width), ceilCells(s.Height)
}

func ceilCells(v float64) int {
	n := int(v)
	if float64(n) < v {
		n++
	}
	if n < 1 {
		n = 1
	}
	return n
}
