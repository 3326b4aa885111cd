package datasource

import (
	"github.com/jask/gridsource/geom"
	"github.com/jask/gridsource/listview"
)

// ListSource is the adapter seen through the list container's protocol.
type ListSource struct {
	*Adapter
}

var (
	_ listview.DataSource = ListSource{}
	_ listview.Delegate   = ListSource{}
)

func (l ListSource) NumberOfSections() int {
	return l.source().NumberOfSections()
}

func (l ListSource) NumberOfRows(section int) int {
	return l.source().NumberOfItems(section)
}

// CellForRow panics with ErrMisuse when the source's cell is not a
// listview.Row.
func (l ListSource) CellForRow(p geom.Position) listview.Row {
	c := l.source().Cell(p)
	row, ok := c.(listview.Row)
	if !ok {
		misuse("cell %T at %v cannot be shown in a list: it does not implement listview.Row", c, p)
	}
	return row
}

// HeightForRow answers only while the source consumes size delegate calls;
// otherwise the list self-sizes the row and Size is never called.
func (l ListSource) HeightForRow(p geom.Position) (float64, bool) {
	if !l.shouldConsumeSizes() {
		return 0, false
	}
	return l.size(p).Height, true
}

func (l ListSource) ShouldHighlightRow(p geom.Position) bool {
	return l.shouldHighlight(p)
}

func (l ListSource) DidHighlightRow(p geom.Position) {
	l.didHighlight(p)
}

func (l ListSource) DidUnhighlightRow(p geom.Position) {
	l.didUnhighlight(p)
}

func (l ListSource) WillSelectRow(p geom.Position) (geom.Position, bool) {
	return l.willSelect(p)
}

func (l ListSource) DidSelectRow(p geom.Position) {
	l.didSelect(p)
}

func (l ListSource) WillDeselectRow(p geom.Position) (geom.Position, bool) {
	return l.willDeselect(p)
}

func (l ListSource) DidDeselectRow(p geom.Position) {
	l.didDeselect(p)
}
