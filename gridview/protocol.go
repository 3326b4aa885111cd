package gridview

import "github.com/jask/gridsource/geom"

// State is the per-item presentation state handed to an Item when it renders.
type State struct {
	Highlighted bool
	Selected    bool
}

// Item is the native cell type of the grid container.
type Item interface {
	ViewItem(width, height int, st State) string
}

// DataSource supplies the grid's content.
type DataSource interface {
	NumberOfSections() int
	NumberOfItems(section int) int
	CellForItem(p geom.Position) Item
}

// Delegate receives the grid's interaction and layout callbacks. Unlike the
// list, selection here is a plain yes/no decision.
type Delegate interface {
	ShouldHighlightItem(p geom.Position) bool
	DidHighlightItem(p geom.Position)
	DidUnhighlightItem(p geom.Position)
	ShouldSelectItem(p geom.Position) bool
	DidSelectItem(p geom.Position)
	ShouldDeselectItem(p geom.Position) bool
	DidDeselectItem(p geom.Position)
	// SizeForItem returns false when the layout's item size should be used.
	SizeForItem(p geom.Position) (geom.Size, bool)
}
