package datasource

import (
	"github.com/jask/gridsource/geom"
	"github.com/jask/gridsource/gridview"
)

// GridSource is the adapter seen through the grid container's protocol.
type GridSource struct {
	*Adapter
}

var (
	_ gridview.DataSource = GridSource{}
	_ gridview.Delegate   = GridSource{}
)

func (g GridSource) NumberOfSections() int {
	return g.source().NumberOfSections()
}

func (g GridSource) NumberOfItems(section int) int {
	return g.source().NumberOfItems(section)
}

// CellForItem panics with ErrMisuse when the source's cell is not a
// gridview.Item.
func (g GridSource) CellForItem(p geom.Position) gridview.Item {
	c := g.source().Cell(p)
	item, ok := c.(gridview.Item)
	if !ok {
		misuse("cell %T at %v cannot be shown in a grid: it does not implement gridview.Item", c, p)
	}
	return item
}

// SizeForItem answers trivially with false while the source is passive, so
// the grid falls back to its layout's item size.
func (g GridSource) SizeForItem(p geom.Position) (geom.Size, bool) {
	if !g.shouldConsumeSizes() {
		return geom.Size{}, false
	}
	return g.size(p), true
}

func (g GridSource) ShouldHighlightItem(p geom.Position) bool {
	return g.shouldHighlight(p)
}

func (g GridSource) DidHighlightItem(p geom.Position) {
	g.didHighlight(p)
}

func (g GridSource) DidUnhighlightItem(p geom.Position) {
	g.didUnhighlight(p)
}

// ShouldSelectItem collapses WillSelect to a yes/no: any returned position,
// redirected or not, lets the selection proceed.
func (g GridSource) ShouldSelectItem(p geom.Position) bool {
	_, ok := g.willSelect(p)
	return ok
}

func (g GridSource) DidSelectItem(p geom.Position) {
	g.didSelect(p)
}

func (g GridSource) ShouldDeselectItem(p geom.Position) bool {
	_, ok := g.willDeselect(p)
	return ok
}

func (g GridSource) DidDeselectItem(p geom.Position) {
	g.didDeselect(p)
}
