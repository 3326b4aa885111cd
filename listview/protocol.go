package listview

import "github.com/jask/gridsource/geom"

// State is the per-row presentation state handed to a Row when it renders.
type State struct {
	Highlighted bool
	Selected    bool
}

// Row is the native cell type of the list container.
type Row interface {
	// ViewRow renders the row at the given width. The number of lines
	// returned is the row's self-sized height.
	ViewRow(width int, st State) string
}

// DataSource supplies the list's content.
type DataSource interface {
	NumberOfSections() int
	NumberOfRows(section int) int
	CellForRow(p geom.Position) Row
}

// Delegate receives the list's interaction callbacks.
//
// WillSelectRow and WillDeselectRow may redirect the action to another
// position, or cancel it by returning false.
type Delegate interface {
	ShouldHighlightRow(p geom.Position) bool
	DidHighlightRow(p geom.Position)
	DidUnhighlightRow(p geom.Position)
	WillSelectRow(p geom.Position) (geom.Position, bool)
	DidSelectRow(p geom.Position)
	WillDeselectRow(p geom.Position) (geom.Position, bool)
	DidDeselectRow(p geom.Position)
	// HeightForRow returns false when the delegate leaves sizing to the
	// list, which then self-sizes the row.
	HeightForRow(p geom.Position) (float64, bool)
}
