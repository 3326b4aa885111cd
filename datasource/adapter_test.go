package datasource

import (
	"errors"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/gridsource/geom"
	"github.com/jask/gridsource/gridview"
	"github.com/jask/gridsource/listview"
	"github.com/jask/gridsource/scroll"
)

type bothCell struct {
	pos geom.Position
}

func (c bothCell) ViewRow(width int, st listview.State) string {
	return fmt.Sprintf("row %v", c.pos)
}

func (c bothCell) ViewItem(width, height int, st gridview.State) string {
	return fmt.Sprintf("item %v", c.pos)
}

type listOnlyCell struct{}

func (listOnlyCell) ViewRow(int, listview.State) string { return "list" }

type gridOnlyCell struct{}

func (gridOnlyCell) ViewItem(int, int, gridview.State) string { return "grid" }

// minimalSource implements only the required operations.
type minimalSource struct {
	items []int
	cell  func(p geom.Position) Cell
}

func (s *minimalSource) NumberOfSections() int { return len(s.items) }
func (s *minimalSource) NumberOfItems(section int) int { return s.items[section] }

func (s *minimalSource) Cell(p geom.Position) Cell {
	if s.cell != nil {
		return s.cell(p)
	}
	return bothCell{pos: p}
}

// recordingSource overrides every hook and records what reached it.
type recordingSource struct {
	minimalSource
	consume   bool
	size      geom.Size
	sizeCalls int
	noHL      map[geom.Position]bool
	selectTo  map[geom.Position]*geom.Position
	calls     []string
}

func (s *recordingSource) ShouldConsumeSizeDelegateCalls() bool { return s.consume }

func (s *recordingSource) Size(p geom.Position) geom.Size {
	s.sizeCalls++
	return s.size
}

func (s *recordingSource) ShouldHighlight(p geom.Position) bool { return !s.noHL[p] }
func (s *recordingSource) DidHighlight(p geom.Position) { s.record("highlight", p) }
func (s *recordingSource) DidUnhighlight(p geom.Position) { s.record("unhighlight", p) }
func (s *recordingSource) DidSelect(p geom.Position) { s.record("select", p) }
func (s *recordingSource) DidDeselect(p geom.Position) { s.record("deselect", p) }

func (s *recordingSource) WillSelect(p geom.Position) (geom.Position, bool) {
	s.record("willSelect", p)
	return s.redirect(p)
}

func (s *recordingSource) WillDeselect(p geom.Position) (geom.Position, bool) {
	s.record("willDeselect", p)
	return s.redirect(p)
}

func (s *recordingSource) redirect(p geom.Position) (geom.Position, bool) {
	to, ok := s.selectTo[p]
	if !ok {
		return p, true
	}
	if to == nil {
		return geom.Position{}, false
	}
	return *to, true
}

func (s *recordingSource) record(name string, p geom.Position) {
	s.calls = append(s.calls, name+" "+p.String())
}

func recoverMisuse(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		err = e
	}()
	fn()
	return nil
}

func TestNewRequiresConcreteSource(t *testing.T) {
	err := recoverMisuse(t, func() { New(nil) })
	require.True(t, errors.Is(err, ErrMisuse))

	var typedNil *minimalSource
	err = recoverMisuse(t, func() { New(typedNil) })
	require.ErrorIs(t, err, ErrMisuse)

	require.NotPanics(t, func() { New(&minimalSource{items: []int{1}}) })
}

func TestZeroAdapterPanics(t *testing.T) {
	var a Adapter
	require.ErrorIs(t, recoverMisuse(t, func() { a.List() }), ErrMisuse)
	require.ErrorIs(t, recoverMisuse(t, func() { a.Grid() }), ErrMisuse)
	require.ErrorIs(t, recoverMisuse(t, func() { ListSource{Adapter: &a}.NumberOfSections() }), ErrMisuse)
	require.ErrorIs(t, recoverMisuse(t, func() { GridSource{}.NumberOfItems(0) }), ErrMisuse)
}

func TestCountsAndSizingScenario(t *testing.T) {
	src := &recordingSource{
		minimalSource: minimalSource{items: []int{3, 2}},
		consume:       true,
		size:          geom.Size{Width: 100, Height: 44},
	}
	a := New(src)
	list, grid := a.List(), a.Grid()

	require.Equal(t, 2, list.NumberOfSections())
	require.Equal(t, 2, grid.NumberOfSections())
	require.Equal(t, 3, list.NumberOfRows(0))
	require.Equal(t, 2, list.NumberOfRows(1))
	require.Equal(t, 3, grid.NumberOfItems(0))
	require.Equal(t, 2, grid.NumberOfItems(1))

	size, ok := grid.SizeForItem(geom.At(0, 0))
	require.True(t, ok)
	require.Equal(t, geom.Size{Width: 100, Height: 44}, size)

	height, ok := list.HeightForRow(geom.At(0, 0))
	require.True(t, ok)
	require.Equal(t, 44.0, height)
	require.Equal(t, 2, src.sizeCalls)
}

func TestCellTranslationIsLossless(t *testing.T) {
	a := New(&minimalSource{items: []int{2, 3}})
	for s := 0; s < 2; s++ {
		for i := 0; i < a.List().NumberOfRows(s); i++ {
			p := geom.At(s, i)
			require.Equal(t, bothCell{pos: p}, a.List().CellForRow(p))
			require.Equal(t, bothCell{pos: p}, a.Grid().CellForItem(p))
		}
	}
}

func TestCellOfWrongKindPanics(t *testing.T) {
	listOnly := New(&minimalSource{items: []int{1}, cell: func(geom.Position) Cell { return listOnlyCell{} }})
	require.NotPanics(t, func() { listOnly.List().CellForRow(geom.At(0, 0)) })
	err := recoverMisuse(t, func() { listOnly.Grid().CellForItem(geom.At(0, 0)) })
	require.ErrorIs(t, err, ErrMisuse)
	require.Contains(t, err.Error(), "listOnlyCell")

	gridOnly := New(&minimalSource{items: []int{1}, cell: func(geom.Position) Cell { return gridOnlyCell{} }})
	require.NotPanics(t, func() { gridOnly.Grid().CellForItem(geom.At(0, 0)) })
	require.ErrorIs(t, recoverMisuse(t, func() { gridOnly.List().CellForRow(geom.At(0, 0)) }), ErrMisuse)

	nilCell := New(&minimalSource{items: []int{1}, cell: func(geom.Position) Cell { return nil }})
	require.ErrorIs(t, recoverMisuse(t, func() { nilCell.List().CellForRow(geom.At(0, 0)) }), ErrMisuse)
}

func TestPassiveSizingNeverCallsSize(t *testing.T) {
	src := &recordingSource{minimalSource: minimalSource{items: []int{1}}, size: geom.Size{Width: 1, Height: 1}}
	a := New(src)

	require.False(t, a.RespondsToSizing())
	require.False(t, a.Responds(MethodRowHeight))
	require.False(t, a.Responds(MethodItemSize))

	_, ok := a.List().HeightForRow(geom.At(0, 0))
	require.False(t, ok)
	_, ok = a.Grid().SizeForItem(geom.At(0, 0))
	require.False(t, ok)
	require.Zero(t, src.sizeCalls)
}

func TestSizingOptInIsEvaluatedPerQuery(t *testing.T) {
	src := &recordingSource{minimalSource: minimalSource{items: []int{1}}, size: geom.Size{Width: 8, Height: 3}}
	a := New(src)
	require.False(t, a.Responds(MethodRowHeight))

	src.consume = true
	require.True(t, a.Responds(MethodRowHeight))
	require.True(t, a.Responds(MethodItemSize))

	src.consume = false
	require.False(t, a.Responds(MethodItemSize))
}

type consumingWithoutSizer struct {
	minimalSource
}

func (consumingWithoutSizer) ShouldConsumeSizeDelegateCalls() bool { return true }

func TestActiveSizingWithoutSizerPanics(t *testing.T) {
	a := New(&consumingWithoutSizer{minimalSource{items: []int{1}}})
	require.ErrorIs(t, recoverMisuse(t, func() { a.Grid().SizeForItem(geom.At(0, 0)) }), ErrMisuse)
	require.ErrorIs(t, recoverMisuse(t, func() { a.List().HeightForRow(geom.At(0, 0)) }), ErrMisuse)
}

func TestDefaultHooks(t *testing.T) {
	a := New(&minimalSource{items: []int{2}})
	list, grid := a.List(), a.Grid()
	p := geom.At(0, 1)

	require.True(t, list.ShouldHighlightRow(p))
	require.True(t, grid.ShouldHighlightItem(p))

	to, ok := list.WillSelectRow(p)
	require.True(t, ok)
	require.Equal(t, p, to)
	to, ok = list.WillDeselectRow(p)
	require.True(t, ok)
	require.Equal(t, p, to)

	require.True(t, grid.ShouldSelectItem(p))
	require.True(t, grid.ShouldDeselectItem(p))

	require.NotPanics(t, func() {
		list.DidHighlightRow(p)
		list.DidUnhighlightRow(p)
		list.DidSelectRow(p)
		list.DidDeselectRow(p)
		grid.DidHighlightItem(p)
		grid.DidUnhighlightItem(p)
		grid.DidSelectItem(p)
		grid.DidDeselectItem(p)
	})
}

func TestSelectionReconciliation(t *testing.T) {
	redirected := geom.At(1, 0)
	src := &recordingSource{
		minimalSource: minimalSource{items: []int{3, 1}},
		selectTo: map[geom.Position]*geom.Position{
			geom.At(0, 1): &redirected,
			geom.At(0, 2): nil,
		},
	}
	a := New(src)
	list, grid := a.List(), a.Grid()

	tests := []struct {
		name     string
		pos      geom.Position
		wantPos  geom.Position
		wantPass bool
	}{
		{"unchanged", geom.At(0, 0), geom.At(0, 0), true},
		{"redirected", geom.At(0, 1), redirected, true},
		{"cancelled", geom.At(0, 2), geom.Position{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			to, ok := list.WillSelectRow(tc.pos)
			require.Equal(t, tc.wantPass, ok)
			if ok {
				require.Equal(t, tc.wantPos, to)
			}
			require.Equal(t, tc.wantPass, grid.ShouldSelectItem(tc.pos))

			to, ok = list.WillDeselectRow(tc.pos)
			require.Equal(t, tc.wantPass, ok)
			if ok {
				require.Equal(t, tc.wantPos, to)
			}
			require.Equal(t, tc.wantPass, grid.ShouldDeselectItem(tc.pos))
		})
	}
}

func TestLifecycleCallsReachTheSameHooks(t *testing.T) {
	src := &recordingSource{minimalSource: minimalSource{items: []int{2}}, noHL: map[geom.Position]bool{geom.At(0, 1): true}}
	a := New(src)
	list, grid := a.List(), a.Grid()
	p := geom.At(0, 0)

	require.False(t, list.ShouldHighlightRow(geom.At(0, 1)))
	require.False(t, grid.ShouldHighlightItem(geom.At(0, 1)))

	list.DidHighlightRow(p)
	grid.DidHighlightItem(p)
	list.DidUnhighlightRow(p)
	grid.DidUnhighlightItem(p)
	list.DidSelectRow(p)
	grid.DidSelectItem(p)
	grid.ShouldDeselectItem(p)
	list.DidDeselectRow(p)
	grid.DidDeselectItem(p)

	require.Equal(t, []string{
		"highlight [0, 0]", "highlight [0, 0]",
		"unhighlight [0, 0]", "unhighlight [0, 0]",
		"select [0, 0]", "select [0, 0]",
		"willDeselect [0, 0]",
		"deselect [0, 0]", "deselect [0, 0]",
	}, src.calls)
}

func TestRespondsOwnMethods(t *testing.T) {
	a := New(&minimalSource{items: []int{1}})
	require.True(t, a.Responds("listView:cellForRow"))
	require.True(t, a.Responds("gridView:shouldSelectItem"))
	require.False(t, a.Responds("listView:commitEditing"))
	require.False(t, a.Responds(Method(scroll.DidScroll.String())))
}

type fakePool struct {
	name    string
	reloads int
}

func (p *fakePool) DequeueReusableCell(string, geom.Position) Cell { return bothCell{} }
func (p *fakePool) PositionForCell(Cell) (geom.Position, bool) { return geom.Position{}, false }
func (p *fakePool) ReloadData() { p.reloads++ }

func TestReusableViewDelegateIsWeak(t *testing.T) {
	a := New(&minimalSource{items: []int{1}})
	require.Nil(t, a.ReusableViewDelegate())

	pool := &fakePool{}
	SetReusableViewDelegate(a, pool)
	a.ReusableViewDelegate().ReloadData()
	require.Equal(t, 1, pool.reloads)
	runtime.KeepAlive(pool)

	func() {
		SetReusableViewDelegate(a, &fakePool{})
	}()
	collect(t, func() bool { return a.ReusableViewDelegate() == nil })
}

func collect(t *testing.T, gone func() bool) {
	t.Helper()
	for i := 0; i < 10; i++ {
		runtime.GC()
		if gone() {
			return
		}
	}
	t.Fatalf("weakly held value was not collected")
}
