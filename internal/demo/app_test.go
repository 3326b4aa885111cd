package demo

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/gridsource/geom"
	"github.com/jask/gridsource/internal/config"
)

func newApp(t *testing.T) *App {
	t.Helper()
	a := New(config.Default())
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	return a
}

func typeRunes(a *App, s string) {
	for _, r := range s {
		a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// pump feeds every message produced by cmd back into the app.
func pump(a *App, cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		if msg != nil {
			a.Update(msg)
		}
	}
}

func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestSwitchMovesReusableDelegate(t *testing.T) {
	a := newApp(t)
	require.Equal(t, config.ModeList, a.Mode())
	require.Same(t, a.list.Reuse(), a.adapter.ReusableViewDelegate())
	require.True(t, a.list.Focused())

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, config.ModeGrid, a.Mode())
	require.Same(t, a.grid.Reuse(), a.adapter.ReusableViewDelegate())
	require.True(t, a.grid.Focused())
	require.False(t, a.list.Focused())
	require.Contains(t, a.View(), "grid ·")

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, config.ModeList, a.Mode())
}

func TestFilterReloadsActiveHost(t *testing.T) {
	a := newApp(t)
	require.Equal(t, 15, a.list.Len())

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	require.True(t, a.filtering)
	typeRunes(a, "an")
	require.Equal(t, "an", a.catalog.Query())
	require.Equal(t, 4, a.list.Len())

	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, a.filtering)
	require.Equal(t, 4, a.list.Len())

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, "", a.catalog.Query())
	require.Equal(t, 15, a.list.Len())
}

func TestSizingToggle(t *testing.T) {
	a := newApp(t)
	require.False(t, a.adapter.RespondsToSizing())

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.True(t, a.adapter.RespondsToSizing())
	require.Contains(t, a.status, "sizing on")

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	require.False(t, a.adapter.RespondsToSizing())
}

func TestScrollOffsetReachesTracker(t *testing.T) {
	a := newApp(t)
	require.Zero(t, a.tracker.offset.Y)

	a.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	a.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	require.Positive(t, a.tracker.offset.Y)
	require.Contains(t, a.View(), "offset ")
}

func TestSelectionOpensPopup(t *testing.T) {
	a := newApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(a, cmd)
	require.Contains(t, a.popup, "Apple")
	require.Contains(t, a.popup, "Fruit")
	require.Equal(t, "selected Apple", a.status)
	require.Equal(t, []string{"Apple"}, a.catalog.SelectedNames())
	require.True(t, strings.Contains(a.View(), "crisp"))

	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Empty(t, a.popup)
}

func TestQuit(t *testing.T) {
	a := newApp(t)
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
}

func TestFilterAfterSelectKeepsHostInStep(t *testing.T) {
	a := newApp(t)

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(a, cmd)
	require.Equal(t, []string{"Apple"}, a.catalog.SelectedNames())
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	typeRunes(a, "banana")
	a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 1, a.list.Len())
	hl, ok := a.catalog.Highlighted()
	require.True(t, ok)
	require.Equal(t, "Banana", hl.Name)
	require.Empty(t, a.list.Selected(), "Apple's position now shows Banana")
	require.Empty(t, a.catalog.SelectedNames())

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	pump(a, cmd)
	require.Equal(t, []string{"Banana"}, a.catalog.SelectedNames())
	require.Equal(t, []geom.Position{geom.At(0, 0)}, a.list.Selected())
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})

	a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, 15, a.list.Len())
	require.Equal(t, []geom.Position{geom.At(0, 1)}, a.list.Selected())
	require.Equal(t, []string{"Banana"}, a.catalog.SelectedNames())

	a.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, []geom.Position{geom.At(0, 1)}, a.grid.Selected())
}
