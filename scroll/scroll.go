// Package scroll defines the scroll-notification protocol family shared by
// the list and grid hosts.
//
// A delegate opts into individual notifications by implementing the matching
// one-method interface; nothing forces it to implement all of them.
package scroll

import "strings"

// Offset is the viewport origin in terminal cells.
type Offset struct {
	X int
	Y int
}

// Event names one notification in the family.
type Event int

const (
	DidScroll Event = iota
	WillBeginScrolling
	DidEndScrolling
	ShouldScrollToTop
	DidScrollToTop
)

// Prefix marks selector names that belong to this protocol family.
const Prefix = "scrollView"

var eventSelectors = map[Event]string{
	DidScroll:          "scrollViewDidScroll",
	WillBeginScrolling: "scrollViewWillBeginScrolling",
	DidEndScrolling:    "scrollViewDidEndScrolling",
	ShouldScrollToTop:  "scrollViewShouldScrollToTop",
	DidScrollToTop:     "scrollViewDidScrollToTop",
}

// Events lists every notification in declaration order.
func Events() []Event {
	return []Event{DidScroll, WillBeginScrolling, DidEndScrolling, ShouldScrollToTop, DidScrollToTop}
}

func (e Event) String() string {
	if s, ok := eventSelectors[e]; ok {
		return s
	}
	return "scrollViewUnknown"
}

// Lookup maps a selector name to its event. Names outside the family, or
// unknown names inside it, report false.
func Lookup(selector string) (Event, bool) {
	if !strings.HasPrefix(selector, Prefix) {
		return 0, false
	}
	for e, s := range eventSelectors {
		if s == selector {
			return e, true
		}
	}
	return 0, false
}

type DidScroller interface {
	ScrollViewDidScroll(o Offset)
}

type WillBeginScroller interface {
	ScrollViewWillBeginScrolling()
}

type DidEndScroller interface {
	ScrollViewDidEndScrolling(o Offset)
}

// TopScrollGate may veto a jump to the top of the content.
type TopScrollGate interface {
	ScrollViewShouldScrollToTop() bool
}

type DidScrollToTopper interface {
	ScrollViewDidScrollToTop()
}

// Responds reports whether d answers e. A nil d answers nothing.
func Responds(d any, e Event) bool {
	if d == nil {
		return false
	}
	switch e {
	case DidScroll:
		_, ok := d.(DidScroller)
		return ok
	case WillBeginScrolling:
		_, ok := d.(WillBeginScroller)
		return ok
	case DidEndScrolling:
		_, ok := d.(DidEndScroller)
		return ok
	case ShouldScrollToTop:
		_, ok := d.(TopScrollGate)
		return ok
	case DidScrollToTop:
		_, ok := d.(DidScrollToTopper)
		return ok
	}
	return false
}

// Notifier is what a host calls to publish scroll notifications. Each method
// reports whether anything handled the call; hosts treat false as "no
// responder" and carry on with their own default.
type Notifier interface {
	DidScroll(o Offset) bool
	WillBeginScrolling() bool
	DidEndScrolling(o Offset) bool
	// ShouldScrollToTop returns the answer and whether one was given.
	ShouldScrollToTop() (allow, handled bool)
	DidScrollToTop() bool
}

// Direct adapts a plain delegate into a Notifier, for hosts used without an
// adapter in front of them.
type Direct struct {
	Delegate any
}

func (d Direct) DidScroll(o Offset) bool {
	if h, ok := d.Delegate.(DidScroller); ok {
		h.ScrollViewDidScroll(o)
		return true
	}
	return false
}

func (d Direct) WillBeginScrolling() bool {
	if h, ok := d.Delegate.(WillBeginScroller); ok {
		h.ScrollViewWillBeginScrolling()
		return true
	}
	return false
}

func (d Direct) DidEndScrolling(o Offset) bool {
	if h, ok := d.Delegate.(DidEndScroller); ok {
		h.ScrollViewDidEndScrolling(o)
		return true
	}
	return false
}

func (d Direct) ShouldScrollToTop() (bool, bool) {
	if h, ok := d.Delegate.(TopScrollGate); ok {
		return h.ScrollViewShouldScrollToTop(), true
	}
	return true, false
}

func (d Direct) DidScrollToTop() bool {
	if h, ok := d.Delegate.(DidScrollToTopper); ok {
		h.ScrollViewDidScrollToTop()
		return true
	}
	return false
}
