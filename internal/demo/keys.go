package demo

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Switch key.Binding
	Filter key.Binding
	Sizing key.Binding
	Help   key.Binding
	Close  key.Binding
	Quit   key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "list/grid")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Sizing: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle sizing")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// appKeys merges the app bindings with the active container's.
type appKeys struct {
	app  keyMap
	host interface {
		ShortHelp() []key.Binding
		FullHelp() [][]key.Binding
	}
}

func (k appKeys) ShortHelp() []key.Binding {
	return append(k.host.ShortHelp(), k.app.Switch, k.app.Filter, k.app.Help, k.app.Quit)
}

func (k appKeys) FullHelp() [][]key.Binding {
	return append(k.host.FullHelp(), []key.Binding{k.app.Switch, k.app.Filter, k.app.Sizing, k.app.Close, k.app.Quit})
}
