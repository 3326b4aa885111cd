// Package listview is a single-column list container for bubbletea
// programs. It pulls rows from a DataSource, reports interaction to a
// Delegate and publishes scroll notifications.
package listview

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/gridsource/geom"
	"github.com/jask/gridsource/reuse"
	"github.com/jask/gridsource/scroll"
	"github.com/jask/gridsource/widgets"
)

// SelectedMsg is emitted after a row was selected.
type SelectedMsg struct {
	Position geom.Position
}

// DeselectedMsg is emitted after a row was deselected.
type DeselectedMsg struct {
	Position geom.Position
}

type Model struct {
	Title string
	// EstimatedRowHeight is used for rows that neither the delegate sizes
	// nor render any content.
	EstimatedRowHeight int
	MultiSelect        bool
	Palette            widgets.Palette
	Keys               KeyMap

	source   DataSource
	delegate Delegate
	notifier scroll.Notifier
	pool     *reuse.Pool

	width   int
	height  int
	focused bool

	rows     []geom.Position
	cursor   int
	offset   int
	selected map[geom.Position]bool
}

// New builds a list over ds. If d also implements scroll.Notifier it
// receives scroll notifications; otherwise d is treated as a plain scroll
// delegate.
func New(ds DataSource, d Delegate) *Model {
	m := &Model{
		EstimatedRowHeight: 1,
		Palette:            widgets.DefaultPalette,
		Keys:               DefaultKeyMap(),
		source:             ds,
		delegate:           d,
		pool:               reuse.New(),
		cursor:             -1,
		selected:           make(map[geom.Position]bool),
		focused:            true,
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

// Reuse returns the list's cell pool.
func (m *Model) Reuse() *reuse.Pool { return m.pool }

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
	m.scrollToCursor()
}

func (m *Model) Focus() { m.focused = true }
func (m *Model) Blur() { m.focused = false }
func (m *Model) Focused() bool { return m.focused }
func (m *Model) Offset() int { return m.offset }
func (m *Model) Len() int { return len(m.rows) }

// Cursor returns the highlighted position, if any.
func (m *Model) Cursor() (geom.Position, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return geom.Position{}, false
	}
	return m.rows[m.cursor], true
}

// Selected returns the selected positions in display order.
func (m *Model) Selected() []geom.Position {
	out := make([]geom.Position, 0, len(m.selected))
	for _, p := range m.rows {
		if m.selected[p] {
			out = append(out, p)
		}
	}
	return out
}

// Reload re-reads the section and row counts. Positions may name different
// rows afterwards, so the selection is dropped and the row that ends up under
// the cursor is highlighted again.
func (m *Model) Reload() {
	prev := m.cursor
	m.rows = m.rows[:0]
	for s := 0; s < m.source.NumberOfSections(); s++ {
		for i := 0; i < m.source.NumberOfRows(s); i++ {
			m.rows = append(m.rows, geom.At(s, i))
		}
	}
	clear(m.selected)
	m.cursor = -1
	if n := len(m.rows); n > 0 {
		at := min(max(prev, 0), n-1)
		m.moveTo(at, 1)
		if m.cursor < 0 {
			m.moveTo(at, -1)
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
			m.scrollBy(-1)
		case tea.MouseButtonWheelDown:
			m.scrollBy(1)
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
	case key.Matches(msg, m.Keys.Up):
		m.moveBy(-1)
	case key.Matches(msg, m.Keys.Down):
		m.moveBy(1)
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

// moveBy moves the highlight delta rows, skipping rows the delegate refuses
// to highlight.
func (m *Model) moveBy(delta int) {
	if len(m.rows) == 0 {
		return
	}
	start := m.cursor + delta
	if m.cursor < 0 {
		start = 0
	}
	if start < 0 || start >= len(m.rows) {
		return
	}
	m.moveTo(start, sign(delta))
	m.scrollToCursor()
}

func (m *Model) moveTo(index, dir int) {
	for i := index; i >= 0 && i < len(m.rows); i += dir {
		p := m.rows[i]
		if !m.delegate.ShouldHighlightRow(p) {
			continue
		}
		if old, ok := m.Cursor(); ok {
			if old == p {
				return
			}
			m.delegate.DidUnhighlightRow(old)
		}
		m.cursor = i
		m.delegate.DidHighlightRow(p)
		return
	}
}

func (m *Model) page(dir int) {
	m.notifier.WillBeginScrolling()
	_, inner := m.inner()
	m.moveBy(dir * max(1, inner))
	m.notifier.DidEndScrolling(scroll.Offset{Y: m.offset})
}

// ScrollToTop jumps to the first row unless the scroll delegate vetoes it.
func (m *Model) ScrollToTop() {
	if allow, _ := m.notifier.ShouldScrollToTop(); !allow {
		return
	}
	if len(m.rows) > 0 {
		m.moveTo(0, 1)
	}
	m.setOffset(0)
	m.notifier.DidScrollToTop()
}

// Toggle selects the highlighted row, or deselects it when it is already
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

// Select runs the will-select/did-select sequence for p. The delegate may
// redirect the selection or cancel it.
func (m *Model) Select(p geom.Position) tea.Cmd {
	to, ok := m.delegate.WillSelectRow(p)
	if !ok || m.indexOf(to) < 0 {
		return nil
	}
	var cmds []tea.Cmd
	if !m.MultiSelect {
		for _, q := range m.Selected() {
			if q != to {
				cmds = append(cmds, m.deselect(q))
			}
		}
	}
	m.selected[to] = true
	m.delegate.DidSelectRow(to)
	cmds = append(cmds, func() tea.Msg { return SelectedMsg{Position: to} })
	return tea.Batch(cmds...)
}

func (m *Model) deselect(p geom.Position) tea.Cmd {
	to, ok := m.delegate.WillDeselectRow(p)
	if !ok || !m.selected[to] {
		return nil
	}
	delete(m.selected, to)
	m.delegate.DidDeselectRow(to)
	return func() tea.Msg { return DeselectedMsg{Position: to} }
}

func (m *Model) scrollBy(lines int) {
	m.setOffset(m.offset + lines)
}

func (m *Model) setOffset(y int) {
	_, inner := m.inner()
	total := 0
	for _, h := range m.heights() {
		total += h
	}
	y = min(y, max(0, total-inner))
	y = max(0, y)
	if y == m.offset {
		return
	}
	m.offset = y
	m.notifier.DidScroll(scroll.Offset{Y: y})
}

// scrollToCursor adjusts the offset so the highlighted row is fully visible.
func (m *Model) scrollToCursor() {
	if m.cursor < 0 || m.height <= 0 {
		return
	}
	_, inner := m.inner()
	heights := m.heights()
	top := 0
	for i := 0; i < m.cursor; i++ {
		top += heights[i]
	}
	bottom := top + heights[m.cursor]
	switch {
	case top < m.offset:
		m.setOffset(top)
	case bottom > m.offset+inner:
		m.setOffset(min(top, bottom-inner))
	}
}

func (m *Model) inner() (int, int) {
	return widgets.Pane{}.Inner(m.width, m.height)
}

// heights measures every row. A delegate height wins; otherwise the row
// sizes itself by the lines it renders.
func (m *Model) heights() []int {
	width, _ := m.inner()
	m.pool.BeginPass()
	out := make([]int, len(m.rows))
	for i, p := range m.rows {
		if h, ok := m.delegate.HeightForRow(p); ok {
			out[i] = max(1, int(math.Ceil(h)))
			continue
		}
		out[i] = m.selfSize(m.source.CellForRow(p).ViewRow(width, m.state(p)))
	}
	return out
}

func (m *Model) selfSize(rendered string) int {
	if rendered == "" {
		return max(1, m.EstimatedRowHeight)
	}
	return strings.Count(rendered, "\n") + 1
}

func (m *Model) state(p geom.Position) State {
	cur, ok := m.Cursor()
	return State{Highlighted: ok && cur == p, Selected: m.selected[p]}
}

func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	width, inner := m.inner()
	m.pool.BeginPass()
	lines := make([]string, 0, inner)
	top := 0
	for _, p := range m.rows {
		if top >= m.offset+inner {
			break
		}
		rendered := m.source.CellForRow(p).ViewRow(width, m.state(p))
		h := m.selfSize(rendered)
		if dh, ok := m.delegate.HeightForRow(p); ok {
			h = max(1, int(math.Ceil(dh)))
		}
		rowLines := fitLines(rendered, h)
		for i, l := range rowLines {
			if y := top + i; y >= m.offset && y < m.offset+inner {
				lines = append(lines, m.decorate(l, p))
			}
		}
		top += h
	}
	if len(m.rows) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(m.Palette.Muted).Render("No items"))
	}
	return widgets.Pane{
		Title:   m.Title,
		Content: strings.Join(lines, "\n"),
		Focused: m.focused,
		Palette: m.Palette,
	}.Render(m.width, m.height)
}

func (m *Model) decorate(line string, p geom.Position) string {
	st := m.state(p)
	style := lipgloss.NewStyle().Foreground(m.Palette.Text)
	switch {
	case st.Highlighted && st.Selected:
		style = style.Foreground(m.Palette.Selected).Bold(true)
	case st.Highlighted:
		style = style.Foreground(m.Palette.Highlight).Bold(true)
	case st.Selected:
		style = style.Foreground(m.Palette.Selected)
	}
	return style.Render(line)
}

func (m *Model) indexOf(p geom.Position) int {
	for i, q := range m.rows {
		if q == p {
			return i
		}
	}
	return -1
}

func fitLines(s string, h int) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > h {
		return lines[:h]
	}
	for len(lines) < h {
		lines = append(lines, "")
	}
	return lines
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}
