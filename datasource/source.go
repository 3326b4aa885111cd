package datasource

import "github.com/jask/gridsource/geom"

// Cell is an opaque renderable unit produced by a Source. To be shown in the
// list it must implement listview.Row; in the grid, gridview.Item.
type Cell = any

// Source is the container-agnostic contract. These three operations have no
// sensible default, so they are the only required ones.
type Source interface {
	NumberOfSections() int
	NumberOfItems(section int) int
	Cell(p geom.Position) Cell
}

// Sizer supplies explicit cell sizes. It is only consulted while the source
// consumes size delegate calls.
type Sizer interface {
	Size(p geom.Position) geom.Size
}

// SizeConsumer switches the sizing opt-in. Without it the adapter stays
// passive and the containers size cells themselves.
type SizeConsumer interface {
	ShouldConsumeSizeDelegateCalls() bool
}

type Highlighter interface {
	ShouldHighlight(p geom.Position) bool
	DidHighlight(p geom.Position)
	DidUnhighlight(p geom.Position)
}

// Selector may redirect a selection to another position or cancel it by
// returning false.
type Selector interface {
	WillSelect(p geom.Position) (geom.Position, bool)
	DidSelect(p geom.Position)
}

// Deselector is the deselection counterpart of Selector.
type Deselector interface {
	WillDeselect(p geom.Position) (geom.Position, bool)
	DidDeselect(p geom.Position)
}

// ReusableViewDelegate is implemented by hosts that recycle cells. The
// adapter only stores it; sources fetch it to dequeue cells.
type ReusableViewDelegate interface {
	DequeueReusableCell(reuseID string, p geom.Position) Cell
	PositionForCell(c Cell) (geom.Position, bool)
	ReloadData()
}

// The hooks below resolve optional interfaces on every call, so a source
// that changes its mind between callbacks is always honored.

func (a *Adapter) shouldConsumeSizes() bool {
	if c, ok := a.source().(SizeConsumer); ok {
		return c.ShouldConsumeSizeDelegateCalls()
	}
	return false
}

func (a *Adapter) size(p geom.Position) geom.Size {
	s, ok := a.source().(Sizer)
	if !ok {
		misuse("%T consumes size delegate calls but does not implement Sizer", a.src)
	}
	return s.Size(p)
}

func (a *Adapter) shouldHighlight(p geom.Position) bool {
	if h, ok := a.source().(Highlighter); ok {
		return h.ShouldHighlight(p)
	}
	return true
}

func (a *Adapter) didHighlight(p geom.Position) {
	if h, ok := a.source().(Highlighter); ok {
		h.DidHighlight(p)
	}
}

func (a *Adapter) didUnhighlight(p geom.Position) {
	if h, ok := a.source().(Highlighter); ok {
		h.DidUnhighlight(p)
	}
}

func (a *Adapter) willSelect(p geom.Position) (geom.Position, bool) {
	if s, ok := a.source().(Selector); ok {
		return s.WillSelect(p)
	}
	return p, true
}

func (a *Adapter) didSelect(p geom.Position) {
	if s, ok := a.source().(Selector); ok {
		s.DidSelect(p)
	}
}

func (a *Adapter) willDeselect(p geom.Position) (geom.Position, bool) {
	if d, ok := a.source().(Deselector); ok {
		return d.WillDeselect(p)
	}
	return p, true
}

func (a *Adapter) didDeselect(p geom.Position) {
	if d, ok := a.source().(Deselector); ok {
		d.DidDeselect(p)
	}
}
