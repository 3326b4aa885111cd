// Package catalog is the demo's concrete data source: a sectioned list of
// entries that can be filtered and shown in either container.
package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"

	"github.com/jask/gridsource/datasource"
	"github.com/jask/gridsource/geom"
)

type Entry struct {
	ID     uuid.UUID
	Name   string
	Detail string
	// Locked entries refuse selection.
	Locked bool
	// AliasOf names another entry; selecting the alias selects it instead.
	AliasOf string
}

type Section struct {
	Title   string
	Entries []Entry
}

type visibleSection struct {
	section int
	entries []int
}

// Catalog implements datasource.Source and every optional hook.
type Catalog struct {
	sections    []Section
	visible     []visibleSection
	query       string
	maxDistance int

	consumeSizes bool
	cellSize     geom.Size

	adapter   *datasource.Adapter
	selected  map[uuid.UUID]bool
	highlight *Entry
}

var (
	_ datasource.Source       = (*Catalog)(nil)
	_ datasource.Sizer        = (*Catalog)(nil)
	_ datasource.SizeConsumer = (*Catalog)(nil)
	_ datasource.Highlighter  = (*Catalog)(nil)
	_ datasource.Selector     = (*Catalog)(nil)
	_ datasource.Deselector   = (*Catalog)(nil)
)

type Option func(*Catalog)

// WithSizing makes the catalog size its own cells.
func WithSizing(consume bool, size geom.Size) Option {
	return func(c *Catalog) {
		c.consumeSizes = consume
		c.cellSize = size
	}
}

// WithMaxDistance sets how many edits a fuzzy match may need.
func WithMaxDistance(d int) Option {
	return func(c *Catalog) { c.maxDistance = max(0, d) }
}

// New builds a catalog over sections. Entries without an ID get a stable
// one derived from their section and name.
func New(sections []Section, opts ...Option) *Catalog {
	c := &Catalog{
		sections:    sections,
		maxDistance: 2,
		cellSize:    geom.Size{Width: 22, Height: 4},
		selected:    make(map[uuid.UUID]bool),
	}
	for si := range c.sections {
		for ei := range c.sections[si].Entries {
			e := &c.sections[si].Entries[ei]
			if e.ID == uuid.Nil {
				e.ID = EntryID(c.sections[si].Title, e.Name)
			}
		}
	}
	for _, opt := range opts {
		opt(c)
	}
	c.Filter("")
	return c
}

// EntryID derives the stable identity of an entry.
func EntryID(section, name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("entry:"+section+"/"+name))
}

// Bind attaches the adapter that wraps this catalog, so cells can be
// dequeued from whichever container currently hosts it.
func (c *Catalog) Bind(a *datasource.Adapter) {
	c.adapter = a
}

// Filter keeps entries whose name contains query, or is within the
// configured edit distance of it, ranked closest first. An empty query
// shows everything in declaration order. Hidden entries lose their
// selection.
func (c *Catalog) Filter(query string) {
	c.query = strings.ToLower(strings.TrimSpace(query))
	c.visible = c.visible[:0]
	for si, s := range c.sections {
		type ranked struct {
			index int
			dist  int
		}
		var hits []ranked
		for ei, e := range s.Entries {
			d, ok := c.match(e.Name)
			if ok {
				hits = append(hits, ranked{index: ei, dist: d})
			}
		}
		if len(hits) == 0 {
			continue
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
		vs := visibleSection{section: si}
		for _, h := range hits {
			vs.entries = append(vs.entries, h.index)
		}
		c.visible = append(c.visible, vs)
	}
	shown := make(map[uuid.UUID]bool)
	for _, vs := range c.visible {
		for _, ei := range vs.entries {
			shown[c.sections[vs.section].Entries[ei].ID] = true
		}
	}
	for id := range c.selected {
		if !shown[id] {
			delete(c.selected, id)
		}
	}
	// the host announces a fresh highlight once it has reloaded
	c.highlight = nil
	if d := c.reusable(); d != nil {
		d.ReloadData()
	}
}

// Query returns the active filter.
func (c *Catalog) Query() string { return c.query }

func (c *Catalog) match(name string) (int, bool) {
	if c.query == "" {
		return 0, true
	}
	name = strings.ToLower(name)
	if strings.Contains(name, c.query) {
		return 0, true
	}
	best := levenshtein.ComputeDistance(c.query, name)
	for _, word := range strings.Fields(name) {
		best = min(best, levenshtein.ComputeDistance(c.query, word))
	}
	return best, best <= c.maxDistance
}

// Entry returns the entry shown at p.
func (c *Catalog) Entry(p geom.Position) (Entry, bool) {
	if p.Section < 0 || p.Section >= len(c.visible) {
		return Entry{}, false
	}
	vs := c.visible[p.Section]
	if p.Item < 0 || p.Item >= len(vs.entries) {
		return Entry{}, false
	}
	return c.sections[vs.section].Entries[vs.entries[p.Item]], true
}

// SectionTitle returns the title of a visible section.
func (c *Catalog) SectionTitle(section int) string {
	if section < 0 || section >= len(c.visible) {
		return ""
	}
	return c.sections[c.visible[section].section].Title
}

// PositionOf finds where the named entry is currently shown.
func (c *Catalog) PositionOf(name string) (geom.Position, bool) {
	for si, vs := range c.visible {
		for ii, ei := range vs.entries {
			if strings.EqualFold(c.sections[vs.section].Entries[ei].Name, name) {
				return geom.At(si, ii), true
			}
		}
	}
	return geom.Position{}, false
}

// Highlighted returns the entry under the container's highlight.
func (c *Catalog) Highlighted() (Entry, bool) {
	if c.highlight == nil {
		return Entry{}, false
	}
	return *c.highlight, true
}

// SelectedPositions returns where the selected entries are currently shown.
func (c *Catalog) SelectedPositions() []geom.Position {
	var out []geom.Position
	for si, vs := range c.visible {
		for ii, ei := range vs.entries {
			if c.selected[c.sections[vs.section].Entries[ei].ID] {
				out = append(out, geom.At(si, ii))
			}
		}
	}
	return out
}

// SelectedNames lists selected entries in catalog order.
func (c *Catalog) SelectedNames() []string {
	var out []string
	for _, s := range c.sections {
		for _, e := range s.Entries {
			if c.selected[e.ID] {
				out = append(out, e.Name)
			}
		}
	}
	return out
}

// SetConsumeSizes flips the sizing opt-in at runtime.
func (c *Catalog) SetConsumeSizes(on bool) { c.consumeSizes = on }

func (c *Catalog) NumberOfSections() int { return len(c.visible) }

func (c *Catalog) NumberOfItems(section int) int {
	if section < 0 || section >= len(c.visible) {
		return 0
	}
	return len(c.visible[section].entries)
}

func (c *Catalog) Cell(p geom.Position) datasource.Cell {
	e, _ := c.Entry(p)
	var cell *EntryCell
	if d := c.reusable(); d != nil {
		cell, _ = d.DequeueReusableCell(ReuseID, p).(*EntryCell)
	}
	if cell == nil {
		cell = &EntryCell{}
	}
	cell.Entry = e
	cell.Section = c.SectionTitle(p.Section)
	cell.Chosen = c.selected[e.ID]
	cell.Matched = c.highlights(e.Name)
	return cell
}

// highlights returns where the query lands in name. Names that only passed
// the edit-distance check have no subsequence match and stay plain.
func (c *Catalog) highlights(name string) []int {
	if c.query == "" {
		return nil
	}
	if m := fuzzy.Find(c.query, []string{name}); len(m) > 0 {
		return m[0].MatchedIndexes
	}
	return nil
}

func (c *Catalog) ShouldConsumeSizeDelegateCalls() bool { return c.consumeSizes }

func (c *Catalog) Size(geom.Position) geom.Size { return c.cellSize }

func (c *Catalog) ShouldHighlight(p geom.Position) bool {
	_, ok := c.Entry(p)
	return ok
}

func (c *Catalog) DidHighlight(p geom.Position) {
	if e, ok := c.Entry(p); ok {
		c.highlight = &e
	}
}

func (c *Catalog) DidUnhighlight(p geom.Position) {
	if e, ok := c.Entry(p); ok && c.highlight != nil && c.highlight.ID == e.ID {
		c.highlight = nil
	}
}

// WillSelect cancels locked entries and redirects aliases to their target.
// An alias whose target is filtered out cannot be selected.
func (c *Catalog) WillSelect(p geom.Position) (geom.Position, bool) {
	e, ok := c.Entry(p)
	if !ok || e.Locked {
		return geom.Position{}, false
	}
	if e.AliasOf != "" {
		return c.PositionOf(e.AliasOf)
	}
	return p, true
}

// DidSelect records the entry at p, or its target when p is an alias. The
// grid selects aliases in place, so the redirect happens here too.
func (c *Catalog) DidSelect(p geom.Position) {
	if e, ok := c.target(p); ok {
		c.selected[e.ID] = true
	}
}

func (c *Catalog) WillDeselect(p geom.Position) (geom.Position, bool) {
	return p, true
}

func (c *Catalog) DidDeselect(p geom.Position) {
	if e, ok := c.target(p); ok {
		delete(c.selected, e.ID)
	}
}

func (c *Catalog) target(p geom.Position) (Entry, bool) {
	e, ok := c.Entry(p)
	if !ok || e.AliasOf == "" {
		return e, ok
	}
	to, ok := c.PositionOf(e.AliasOf)
	if !ok {
		return Entry{}, false
	}
	return c.Entry(to)
}

func (c *Catalog) reusable() datasource.ReusableViewDelegate {
	if c.adapter == nil {
		return nil
	}
	return c.adapter.ReusableViewDelegate()
}
