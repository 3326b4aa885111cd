// Package demo wires the catalog into both containers behind one adapter.
package demo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/gridsource/datasource"
	"github.com/jask/gridsource/geom"
	"github.com/jask/gridsource/gridview"
	"github.com/jask/gridsource/internal/catalog"
	"github.com/jask/gridsource/internal/config"
	"github.com/jask/gridsource/listview"
	"github.com/jask/gridsource/scroll"
	"github.com/jask/gridsource/widgets"
)

// scrollTracker is the auxiliary scroll delegate: it only cares about the
// offset and the jump to the top.
type scrollTracker struct {
	offset scroll.Offset
	tops   int
}

func (s *scrollTracker) ScrollViewDidScroll(o scroll.Offset) { s.offset = o }
func (s *scrollTracker) ScrollViewDidScrollToTop() { s.tops++ }

// App is the demo's root model.
type App struct {
	cfg     config.Config
	catalog *catalog.Catalog
	adapter *datasource.Adapter
	list    *listview.Model
	grid    *gridview.Model
	tracker *scrollTracker
	palette widgets.Palette

	mode      string
	filter    textinput.Model
	filtering bool
	help      help.Model
	keys      keyMap
	popup     string
	status    string

	width  int
	height int
}

func New(cfg config.Config) *App {
	cat := catalog.New(catalog.Sample(),
		catalog.WithSizing(cfg.Source.ConsumeSizes, geom.Size{Width: cfg.Source.CellWidth, Height: cfg.Source.CellHeight}),
		catalog.WithMaxDistance(cfg.Source.MaxDistance),
	)
	a := datasource.New(cat)
	cat.Bind(a)

	pal := widgets.DefaultPalette
	if cfg.UI.Accent != "" {
		pal.Accent = lipgloss.Color(cfg.UI.Accent)
	}
	if cfg.UI.Border != "" {
		pal.Border = lipgloss.Color(cfg.UI.Border)
	}

	list := listview.New(a.List(), a.List())
	list.Title = "Catalog"
	list.EstimatedRowHeight = cfg.Layout.EstimatedRowHeight
	list.MultiSelect = cfg.Layout.MultiSelect
	list.Palette = pal
	catalog.RegisterCells(list.Reuse())

	grid := gridview.New(a.Grid(), a.Grid())
	grid.Title = "Catalog"
	grid.Layout = gridview.Layout{
		ItemSize: geom.Size{Width: cfg.Layout.ItemWidth, Height: cfg.Layout.ItemHeight},
		Gap:      cfg.Layout.Gap,
	}
	grid.MultiSelect = cfg.Layout.MultiSelect
	grid.Palette = pal
	catalog.RegisterCells(grid.Reuse())

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "filter"

	app := &App{
		cfg:     cfg,
		catalog: cat,
		adapter: a,
		list:    list,
		grid:    grid,
		tracker: &scrollTracker{},
		palette: pal,
		filter:  ti,
		help:    help.New(),
		keys:    newKeyMap(),
	}
	datasource.SetScrollDelegate(a, app.tracker)
	app.setMode(cfg.Layout.Mode)
	return app
}

// Mode returns "list" or "grid".
func (a *App) Mode() string { return a.mode }

func (a *App) setMode(mode string) {
	a.mode = mode
	if mode == config.ModeGrid {
		a.list.Blur()
		a.grid.Focus()
		datasource.SetReusableViewDelegate(a.adapter, a.grid.Reuse())
		a.grid.Reload()
	} else {
		a.grid.Blur()
		a.list.Focus()
		datasource.SetReusableViewDelegate(a.adapter, a.list.Reuse())
		a.list.Reload()
	}
	a.reselect()
	a.resize()
}

// reselect replays the catalog's selection into the active host, whose
// reload dropped it.
func (a *App) reselect() {
	for _, p := range a.catalog.SelectedPositions() {
		if a.mode == config.ModeGrid {
			a.grid.Select(p)
		} else {
			a.list.Select(p)
		}
	}
}

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.help.Width = msg.Width
		a.resize()
		return a, nil
	case listview.SelectedMsg:
		a.showEntry(msg.Position)
		return a, nil
	case gridview.SelectedMsg:
		a.showEntry(msg.Position)
		return a, nil
	case listview.DeselectedMsg, gridview.DeselectedMsg:
		a.status = "deselected"
		return a, nil
	case tea.KeyMsg:
		if a.filtering {
			return a.updateFilter(msg)
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case a.popup != "" && key.Matches(msg, a.keys.Close):
			a.popup = ""
			return a, nil
		case key.Matches(msg, a.keys.Switch):
			if a.mode == config.ModeGrid {
				a.setMode(config.ModeList)
			} else {
				a.setMode(config.ModeGrid)
			}
			return a, nil
		case key.Matches(msg, a.keys.Filter):
			a.filtering = true
			return a, a.filter.Focus()
		case key.Matches(msg, a.keys.Sizing):
			on := !a.adapter.RespondsToSizing()
			a.catalog.SetConsumeSizes(on)
			a.status = fmt.Sprintf("source sizing %s", onOff(on))
			a.resize()
			return a, nil
		case key.Matches(msg, a.keys.Help):
			a.help.ShowAll = !a.help.ShowAll
			a.resize()
			return a, nil
		}
	}
	return a, a.forward(msg)
}

func (a *App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		a.filtering = false
		a.filter.Blur()
		if msg.Type == tea.KeyEsc {
			a.filter.SetValue("")
			a.catalog.Filter("")
			a.reselect()
		}
		return a, nil
	}
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	a.catalog.Filter(a.filter.Value())
	a.reselect()
	return a, cmd
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if a.mode == config.ModeGrid {
		_, cmd = a.grid.Update(msg)
	} else {
		_, cmd = a.list.Update(msg)
	}
	return cmd
}

func (a *App) showEntry(p geom.Position) {
	e, ok := a.catalog.Entry(p)
	if !ok {
		return
	}
	lines := []string{
		lipgloss.NewStyle().Bold(true).Render(e.Name),
		a.catalog.SectionTitle(p.Section),
	}
	if e.Detail != "" {
		lines = append(lines, "", e.Detail)
	}
	lines = append(lines, "", "id "+e.ID.String())
	a.popup = strings.Join(lines, "\n")
	a.status = "selected " + e.Name
}

func (a *App) chromeHeight() int {
	return 1 + lipgloss.Height(a.help.View(a.helpKeys()))
}

func (a *App) resize() {
	if a.width <= 0 || a.height <= 0 {
		return
	}
	h := max(3, a.height-a.chromeHeight())
	a.list.SetSize(a.width, h)
	a.grid.SetSize(a.width, h)
}

func (a *App) helpKeys() appKeys {
	if a.mode == config.ModeGrid {
		return appKeys{app: a.keys, host: a.grid.Keys}
	}
	return appKeys{app: a.keys, host: a.list.Keys}
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return ""
	}
	body := a.list.View()
	if a.mode == config.ModeGrid {
		body = a.grid.View()
	}
	if a.popup != "" {
		body = widgets.Popup{Body: a.popup, Palette: a.palette}.Over(body, a.width, lipgloss.Height(body))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, a.statusLine(), a.help.View(a.helpKeys()))
}

func (a *App) statusLine() string {
	muted := lipgloss.NewStyle().Foreground(a.palette.Muted)
	left := fmt.Sprintf("%s · sizing %s · offset %d", a.mode, onOff(a.adapter.RespondsToSizing()), a.tracker.offset.Y)
	if a.filtering || a.filter.Value() != "" {
		left = a.filter.View() + "  " + muted.Render(left)
	} else {
		left = muted.Render(left)
	}
	if a.status != "" {
		left += "  " + a.status
	}
	if e, ok := a.catalog.Highlighted(); ok {
		left += muted.Render("  ▸ " + e.Name)
	}
	return widgets.PadRight(left, a.width)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
