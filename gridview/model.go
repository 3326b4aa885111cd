// Package gridview is a multi-column grid container for bubbletea programs.
// Items flow left to right and wrap; each section starts a new line.
package gridview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/gridsource/geom"
	"github.com/jask/gridsource/reuse"
	"github.com/jask/gridsource/scroll"
	"github.com/jask/gridsource/widgets"
)

// SelectedMsg is emitted after an item was selected.
type SelectedMsg struct {
	Position geom.Position
}

// DeselectedMsg is emitted after an item was deselected.
type DeselectedMsg struct {
	Position geom.Position
}

type Model struct {
	Title       string
	Layout      Layout
	MultiSelect bool
	Palette     widgets.Palette
	Keys        KeyMap

	source   DataSource
	delegate Delegate
	notifier scroll.Notifier
	pool     *reuse.Pool

	width   int
	height  int
	focused bool

	positions []geom.Position
	cursor    int
	offset    int
	selected  map[geom.Position]bool
}

// New builds a grid over ds. If d also implements scroll.Notifier it
// receives scroll notifications; otherwise d is treated as a plain scroll
// delegate.
func New(ds DataSource, d Delegate) *Model {
	m := &Model{
		Layout:   DefaultLayout(),
		Palette:  widgets.DefaultPalette,
		Keys:     DefaultKeyMap(),
		source:   ds,
		delegate: d,
		pool:     reuse.New(),
		cursor:   -1,
		selected: make(map[geom.Position]bool),
		focused:  true,
	}
	if n, ok := d.(scroll.Notifier); ok {
		m.notifier = n
	} else {
		m.notifier = scroll.Direct{Delegate: d}
	}
	m.pool.OnReload = m.Reload
	m.Reload()
	return m
}

// Reuse returns the grid's cell pool.
func (m *Model) Reuse() *reuse.Pool { return m.pool }

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.scrollToCursor()
}

func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur() { m.focused = false }
func (m *Model) Focused() bool { return m.focused }
func (m *Model) Offset() int { return m.offset }
func (m *Model) Len() int { return len(m.positions) }

// Cursor returns the highlighted position, if any.
func (m *Model) Cursor() (geom.Position, bool) {
	if m.cursor < 0 || m.cursor >= len(m.positions) {
		return geom.Position{}, false
	}
	return m.positions[m.cursor], true
}

// Selected returns the selected positions in display order.
func (m *Model) Selected() []geom.Position {
	out := make([]geom.Position, 0, len(m.selected))
	for _, p := range m.positions {
		if m.selected[p] {
			out = append(out, p)
		}
	}
	return out
}

// Reload re-reads the section and item counts. Positions may name
// different items afterwards, so the selection is dropped and the item that
// ends up under the cursor is highlighted again.
func (m *Model) Reload() {
	prev := m.cursor
	m.positions = m.positions[:0]
	for s := 0; s < m.source.NumberOfSections(); s++ {
		for i := 0; i < m.source.NumberOfItems(s); i++ {
			m.positions = append(m.positions, geom.At(s, i))
		}
	}
	clear(m.selected)
	m.cursor = -1
	if n := len(m.positions); n > 0 {
		at := min(max(prev, 0), n-1)
		m.highlightFrom(at, 1)
		if m.cursor < 0 {
			m.highlightFrom(at, -1)
		}
	}
	m.offset = 0
	m.scrollToCursor()
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.setOffset(m.offset - 1)
		case tea.MouseButtonWheelDown:
			m.setOffset(m.offset + 1)
		}
	case tea.KeyMsg:
		if !m.focused {
			break
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.Keys.Left):
		m.step(-1)
	case key.Matches(msg, m.Keys.Right):
		m.step(1)
	case key.Matches(msg, m.Keys.Up):
		m.vertical(-1)
	case key.Matches(msg, m.Keys.Down):
		m.vertical(1)
	case key.Matches(msg, m.Keys.PageUp):
		m.page(-1)
	case key.Matches(msg, m.Keys.PageDown):
		m.page(1)
	case key.Matches(msg, m.Keys.Top):
		m.ScrollToTop()
	case key.Matches(msg, m.Keys.Select):
		return m.Toggle()
	}
	return nil
}

func (m *Model) step(delta int) {
	if m.cursor < 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.positions) {
		return
	}
	m.highlightFrom(next, sign(delta))
	m.scrollToCursor()
}

// vertical moves to the item nearest the current column on the line lines
// away.
func (m *Model) vertical(lines int) {
	if m.cursor < 0 {
		return
	}
	f := m.flow()
	cur := f.items[m.cursor]
	target := min(max(0, cur.line+lines), len(f.lines)-1)
	if target == cur.line {
		return
	}
	next := f.nearest(target, cur.x+cur.w/2)
	m.highlightFrom(next, sign(lines))
	m.scrollToCursor()
}

func (m *Model) highlightFrom(index, dir int) {
	for i := index; i >= 0 && i < len(m.positions); i += dir {
		p := m.positions[i]
		if !m.delegate.ShouldHighlightItem(p) {
			continue
		}
		if old, ok := m.Cursor(); ok {
			if old == p {
				return
			}
			m.delegate.DidUnhighlightItem(old)
		}
		m.cursor = i
		m.delegate.DidHighlightItem(p)
		return
	}
}

func (m *Model) page(dir int) {
	m.notifier.WillBeginScrolling()
	_, inner := m.inner()
	m.setOffset(m.offset + dir*max(1, inner))
	m.notifier.DidEndScrolling(scroll.Offset{Y: m.offset})
}

// ScrollToTop jumps to the first item unless the scroll delegate vetoes it.
func (m *Model) ScrollToTop() {
	if allow, _ := m.notifier.ShouldScrollToTop(); !allow {
		return
	}
	if len(m.positions) > 0 {
		m.highlightFrom(0, 1)
	}
	m.setOffset(0)
	m.notifier.DidScrollToTop()
}

// Toggle selects the highlighted item, or deselects it when it is already
// selected.
func (m *Model) Toggle() tea.Cmd {
	p, ok := m.Cursor()
	if !ok {
		return nil
	}
	if m.selected[p] {
		return m.deselect(p)
	}
	return m.Select(p)
}

// Select asks the delegate whether p may be selected and selects it.
func (m *Model) Select(p geom.Position) tea.Cmd {
	if !m.delegate.ShouldSelectItem(p) {
		return nil
	}
	var cmds []tea.Cmd
	if !m.MultiSelect {
		for _, q := range m.Selected() {
			if q != p {
				cmds = append(cmds, m.deselect(q))
			}
		}
	}
	m.selected[p] = true
	m.delegate.DidSelectItem(p)
	cmds = append(cmds, func() tea.Msg { return SelectedMsg{Position: p} })
	return tea.Batch(cmds...)
}

func (m *Model) deselect(p geom.Position) tea.Cmd {
	if !m.delegate.ShouldDeselectItem(p) {
		return nil
	}
	delete(m.selected, p)
	m.delegate.DidDeselectItem(p)
	return func() tea.Msg { return DeselectedMsg{Position: p} }
}

func (m *Model) setOffset(y int) {
	_, inner := m.inner()
	y = min(y, max(0, m.flow().height-inner))
	y = max(0, y)
	if y == m.offset {
		return
	}
	m.offset = y
	m.notifier.DidScroll(scroll.Offset{Y: y})
}

func (m *Model) scrollToCursor() {
	if m.cursor < 0 || m.height <= 0 {
		return
	}
	_, inner := m.inner()
	f := m.flow()
	top, h := f.lineBounds(f.items[m.cursor].line)
	switch {
	case top < m.offset:
		m.setOffset(top)
	case top+h > m.offset+inner:
		m.setOffset(min(top, top+h-inner))
	}
}

func (m *Model) inner() (int, int) {
	return widgets.Pane{}.Inner(m.width, m.height)
}

// sizes asks the delegate for every item size, falling back to the layout.
func (m *Model) sizes() []geom.Size {
	out := make([]geom.Size, len(m.positions))
	for i, p := range m.positions {
		if s, ok := m.delegate.SizeForItem(p); ok {
			out[i] = s
			continue
		}
		out[i] = m.Layout.ItemSize
	}
	return out
}

func (m *Model) flow() flow {
	width, _ := m.inner()
	return place(m.sizes(), m.positions, width, m.Layout.Gap)
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	_, inner := m.inner()
	f := m.flow()
	m.pool.BeginPass()
	var lines []string
	for line := range f.lines {
		top, h := f.lineBounds(line)
		if top+h <= m.offset {
			continue
		}
		if top >= m.offset+inner {
			break
		}
		blocks := make([]string, 0, len(f.lines[line]))
		widths := make([]int, 0, len(f.lines[line]))
		for _, i := range f.lines[line] {
			it := f.items[i]
			st := m.state(it.pos)
			rendered := m.source.CellForItem(it.pos).ViewItem(it.w, it.h, st)
			blocks = append(blocks, m.decorate(widgets.Text(rendered).Render(it.w, it.h), st))
			widths = append(widths, it.w)
		}
		row := strings.Split(widgets.JoinColumns(blocks, widths, m.Layout.Gap), "\n")
		for len(row) < h {
			row = append(row, "")
		}
		for i, l := range row {
			if y := top + i; y >= m.offset && y < m.offset+inner {
				lines = append(lines, l)
			}
		}
	}
	if len(m.positions) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.Palette.Muted).Render("No items"))
	}
	return widgets.Pane{
		Title:   m.Title,
		Content: strings.Join(lines, "\n"),
		Focused: m.focused,
		Palette: m.Palette,
	}.Render(m.width, m.height)
}

func (m *Model) state(p geom.Position) State {
	cur, ok := m.Cursor()
	return State{Highlighted: ok && cur == p, Selected: m.selected[p]}
}

func (m *Model) decorate(block string, st State) string {
	style := lipgloss.NewStyle().Foreground(m.Palette.Text)
	switch {
	case st.Highlighted && st.Selected:
		style = style.Foreground(m.Palette.Selected).Bold(true)
	case st.Highlighted:
		style = style.Foreground(m.Palette.Highlight).Bold(true)
	case st.Selected:
		style = style.Foreground(m.Palette.Selected)
	}
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = style.Render(l)
	}
	return strings.Join(lines, "\n")
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
