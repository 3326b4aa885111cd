package catalog

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jask/gridsource/gridview"
	"github.com/jask/gridsource/listview"
	"github.com/jask/gridsource/reuse"
	"github.com/jask/gridsource/widgets"
)

// ReuseID is the reuse identifier of EntryCell.
const ReuseID = "entry"

// EntryCell renders one entry in either container.
type EntryCell struct {
	identity uuid.UUID
	Entry    Entry
	Section  string
	Chosen   bool
	// Matched holds byte offsets into Entry.Name that the active filter hit.
	Matched []int
}

var (
	_ listview.Row     = (*EntryCell)(nil)
	_ gridview.Item    = (*EntryCell)(nil)
	_ reuse.Identified = (*EntryCell)(nil)
	_ reuse.Preparer   = (*EntryCell)(nil)
)

// RegisterCells teaches pool how to build entry cells.
func RegisterCells(pool *reuse.Pool) {
	pool.Register(ReuseID, func(id uuid.UUID) any {
		return &EntryCell{identity: id}
	})
}

func (c *EntryCell) ReuseIdentity() uuid.UUID { return c.identity }

func (c *EntryCell) PrepareForReuse() {
	c.Entry = Entry{}
	c.Section = ""
	c.Chosen = false
	c.Matched = nil
}

func (c *EntryCell) name() string {
	if len(c.Matched) == 0 {
		return c.Entry.Name
	}
	hit := lipgloss.NewStyle().Foreground(widgets.DefaultPalette.Accent).Underline(true)
	marks := make(map[int]bool, len(c.Matched))
	for _, i := range c.Matched {
		marks[i] = true
	}
	var b strings.Builder
	for i, r := range c.Entry.Name {
		if marks[i] {
			b.WriteString(hit.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *EntryCell) marker(highlighted, selected bool) string {
	switch {
	case selected || c.Chosen:
		return "✓ "
	case highlighted:
		return "▸ "
	}
	return "  "
}

func (c *EntryCell) suffix() string {
	switch {
	case c.Entry.Locked:
		return " (locked)"
	case c.Entry.AliasOf != "":
		return " → " + c.Entry.AliasOf
	}
	return ""
}

// ViewRow renders the name line, plus a detail line when the entry has one.
func (c *EntryCell) ViewRow(width int, st listview.State) string {
	lines := []string{widgets.PadRight(c.marker(st.Highlighted, st.Selected)+c.name()+c.suffix(), width)}
	if c.Entry.Detail != "" {
		muted := lipgloss.NewStyle().Foreground(widgets.DefaultPalette.Muted)
		lines = append(lines, muted.Render(widgets.PadRight("    "+c.Entry.Detail, width)))
	}
	return strings.Join(lines, "\n")
}

// ViewItem renders a bordered tile when there is room for one.
func (c *EntryCell) ViewItem(width, height int, st gridview.State) string {
	body := c.marker(st.Highlighted, st.Selected) + c.name() + c.suffix()
	if c.Entry.Detail != "" {
		body += "\n" + c.Entry.Detail
	}
	if width < 4 || height < 3 {
		return body
	}
	border := widgets.DefaultPalette.Border
	if st.Highlighted {
		border = widgets.DefaultPalette.Highlight
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width - 2).
		MaxWidth(width).
		Height(height - 2).
		MaxHeight(height).
		Render(body)
}
