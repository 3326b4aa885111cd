package gridview

import "github.com/jask/gridsource/geom"

// Layout configures the flow layout.
type Layout struct {
	// ItemSize is used for items the delegate does not size.
	ItemSize geom.Size
	// Gap is the horizontal space between items, in cells.
	Gap int
}

func DefaultLayout() Layout {
	return Layout{ItemSize: geom.Size{Width: 16, Height: 3}, Gap: 1}
}

type placed struct {
	pos  geom.Position
	x, y int
	w, h int
	line int
}

type flow struct {
	items  []placed
	lines  [][]int // indexes into items, per visual line
	height int
}

// place flows items left to right, wrapping at width. Every section starts
// on a fresh line.
func place(sizes []geom.Size, positions []geom.Position, width, gap int) flow {
	var f flow
	x, y, lineH := 0, 0, 0
	section := -1
	newLine := func() {
		y += lineH
		x, lineH = 0, 0
		f.lines = append(f.lines, nil)
	}
	for i, p := range positions {
		w, h := sizes[i].Cells()
		w = min(w, max(1, width))
		if len(f.lines) == 0 {
			f.lines = append(f.lines, nil)
		} else if p.Section != section || (x > 0 && x+w > width) {
			newLine()
		}
		section = p.Section
		line := len(f.lines) - 1
		f.items = append(f.items, placed{pos: p, x: x, y: y, w: w, h: h, line: line})
		f.lines[line] = append(f.lines[line], i)
		x += w + gap
		lineH = max(lineH, h)
	}
	f.height = y + lineH
	return f
}

// lineBounds returns the top and height of a visual line.
func (f flow) lineBounds(line int) (top, height int) {
	for _, i := range f.lines[line] {
		top = f.items[i].y
		height = max(height, f.items[i].h)
	}
	return top, height
}

// nearest returns the item on line whose horizontal center is closest to x.
func (f flow) nearest(line, x int) int {
	best, bestDist := -1, 0
	for _, i := range f.lines[line] {
		it := f.items[i]
		d := it.x + it.w/2 - x
		if d < 0 {
			d = -d
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
