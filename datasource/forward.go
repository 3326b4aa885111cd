package datasource

import "github.com/jask/gridsource/scroll"

// Method names a container callback for capability queries.
type Method string

const (
	MethodRowHeight Method = "listView:heightForRow"
	MethodItemSize  Method = "gridView:sizeForItem"
)

// Methods the adapter always answers through its facades.
var ownMethods = map[Method]bool{
	"listView:numberOfSections":       true,
	"listView:numberOfRowsInSection":  true,
	"listView:cellForRow":             true,
	"listView:shouldHighlightRow":     true,
	"listView:didHighlightRow":        true,
	"listView:didUnhighlightRow":      true,
	"listView:willSelectRow":          true,
	"listView:didSelectRow":           true,
	"listView:willDeselectRow":        true,
	"listView:didDeselectRow":         true,
	"gridView:numberOfSections":       true,
	"gridView:numberOfItemsInSection": true,
	"gridView:cellForItem":            true,
	"gridView:shouldHighlightItem":    true,
	"gridView:didHighlightItem":       true,
	"gridView:didUnhighlightItem":     true,
	"gridView:shouldSelectItem":       true,
	"gridView:didSelectItem":          true,
	"gridView:shouldDeselectItem":     true,
	"gridView:didDeselectItem":        true,
}

// RespondsToSizing reports whether the adapter currently answers the list
// row-height and grid item-size callbacks. It asks the source every time.
func (a *Adapter) RespondsToSizing() bool {
	return a.shouldConsumeSizes()
}

// RespondsToScroll reports whether a scroll delegate is set and answers e.
func (a *Adapter) RespondsToScroll(e scroll.Event) bool {
	return scroll.Responds(a.ScrollDelegate(), e)
}

// Responds reports whether the adapter answers m right now: sizing methods
// follow the opt-in, scroll methods follow the delegate, everything else is
// the adapter's own fixed set.
func (a *Adapter) Responds(m Method) bool {
	if m == MethodRowHeight || m == MethodItemSize {
		return a.RespondsToSizing()
	}
	if e, ok := scroll.Lookup(string(m)); ok && a.RespondsToScroll(e) {
		return true
	}
	return ownMethods[m]
}

// The scroll.Notifier methods below hand the call to the delegate as is.
// Each loads the delegate at call time, so one cleared or collected after a
// Responds check reports no responder instead of failing.

func (a *Adapter) target() scroll.Direct {
	return scroll.Direct{Delegate: a.ScrollDelegate()}
}

func (a *Adapter) DidScroll(o scroll.Offset) bool {
	return a.target().DidScroll(o)
}

func (a *Adapter) WillBeginScrolling() bool {
	return a.target().WillBeginScrolling()
}

func (a *Adapter) DidEndScrolling(o scroll.Offset) bool {
	return a.target().DidEndScrolling(o)
}

func (a *Adapter) ShouldScrollToTop() (bool, bool) {
	return a.target().ShouldScrollToTop()
}

func (a *Adapter) DidScrollToTop() bool {
	return a.target().DidScrollToTop()
}

var _ scroll.Notifier = (*Adapter)(nil)
