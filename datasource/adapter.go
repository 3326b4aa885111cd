package datasource

import (
	"reflect"
	"weak"
)

// Adapter dispatches both container protocols onto one Source. It is the
// abstract half of a data source: it cannot do anything until it is given a
// concrete Source, and a zero Adapter panics on first use.
type Adapter struct {
	src      Source
	scroller weakRef
	reusable weakRef
}

// New wraps src. It panics with ErrMisuse when src is nil.
func New(src Source) *Adapter {
	if isNil(src) {
		misuse("an Adapter needs a concrete Source; got %T", src)
	}
	return &Adapter{src: src}
}

// Source returns the wrapped source.
func (a *Adapter) Source() Source {
	return a.source()
}

func (a *Adapter) source() Source {
	if a == nil || a.src == nil {
		misuse("Adapter used without a Source; construct it with New")
	}
	return a.src
}

// List returns the list-container facade.
func (a *Adapter) List() ListSource {
	a.source()
	return ListSource{Adapter: a}
}

// Grid returns the grid-container facade.
func (a *Adapter) Grid() GridSource {
	a.source()
	return GridSource{Adapter: a}
}

// SetScrollDelegate installs d as the auxiliary scroll delegate without
// taking ownership of it. A nil d clears the delegate.
func SetScrollDelegate[T any](a *Adapter, d *T) {
	a.source()
	a.scroller = makeWeak(d)
}

// ClearScrollDelegate removes the auxiliary scroll delegate.
func (a *Adapter) ClearScrollDelegate() {
	a.scroller = weakRef{}
}

// ScrollDelegate returns the current scroll delegate, or nil once it has been
// cleared or collected.
func (a *Adapter) ScrollDelegate() any {
	return a.scroller.value()
}

// SetReusableViewDelegate stores d without taking ownership of it.
func SetReusableViewDelegate[T any, P interface {
	*T
	ReusableViewDelegate
}](a *Adapter, d P) {
	a.source()
	a.reusable = makeWeak((*T)(d))
}

// ReusableViewDelegate returns the stored delegate, or nil.
func (a *Adapter) ReusableViewDelegate() ReusableViewDelegate {
	d, _ := a.reusable.value().(ReusableViewDelegate)
	return d
}

type weakRef struct {
	load func() any
}

func makeWeak[T any](p *T) weakRef {
	if p == nil {
		return weakRef{}
	}
	wp := weak.Make(p)
	return weakRef{load: func() any {
		if v := wp.Value(); v != nil {
			return v
		}
		return nil
	}}
}

func (w weakRef) value() any {
	if w.load == nil {
		return nil
	}
	return w.load()
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
