package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cubesnake/internal/core"
	"github.com/vovakirdan/cubesnake/internal/registry"
)

// stubGame records what the platform asks of it.
type stubGame struct {
	resets   int
	steps    int
	lastIn   core.Action
	state    core.GameState
	resizedW int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawTextColored(0, 0, "stub", core.ColorGreen) }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastIn = in.Last
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state}
}

type resizableGame struct{ stubGame }

func (g *resizableGame) Resize(w, _ int) { g.resizedW = w }

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestTickStepsGameAndNotifiesObserver(t *testing.T) {
	g := &stubGame{}
	var observed []registry.Game
	m := NewModel(g, core.DefaultConfig(), func(game registry.Game) {
		observed = append(observed, game)
	})
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg{})
	m = update(t, m, TickMsg{})

	if g.steps != 2 {
		t.Errorf("steps = %d, expected 2", g.steps)
	}
	if g.lastIn != core.ActionNone {
		t.Errorf("input not cleared between ticks, last = %v", g.lastIn)
	}
	if len(observed) != 2 || observed[0] != registry.Game(g) {
		t.Errorf("observer saw %d ticks", len(observed))
	}
}

func TestBackToMenuOnlyWhenPaused(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, core.DefaultConfig(), nil)
	m.Init()

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = update(t, m, TickMsg{})
	if m.BackToMenu() {
		t.Fatal("back to menu while playing")
	}

	m = update(t, m, runeKey('p'))
	m = update(t, m, TickMsg{})
	if !m.GameState().Paused {
		t.Fatal("expected paused")
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("expected back to menu while paused")
	}

	steps := g.steps
	m = update(t, m, TickMsg{})
	if g.steps != steps {
		t.Error("game stepped after leaving for the menu")
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(&stubGame{}, core.DefaultConfig(), nil)
	next, cmd := m.Update(runeKey('q'))
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model still renders")
	}
}

func TestResize(t *testing.T) {
	plain := &stubGame{}
	m := NewModel(plain, core.DefaultConfig(), nil)
	m.Init()
	update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if plain.resets != 2 {
		t.Errorf("resets = %d, expected a restart on resize", plain.resets)
	}

	rg := &resizableGame{}
	m = NewModel(rg, core.DefaultConfig(), nil)
	m.Init()
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if rg.resets != 1 || rg.resizedW != 100 {
		t.Errorf("resets = %d, resized to %d; expected an in-place resize", rg.resets, rg.resizedW)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("view does not contain the game output")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawTextColored(0, 0, "cube", core.ColorBrightGreen)
	s.DrawText(0, 1, "snake")

	out := RenderScreen(s)
	if !strings.Contains(out, "cube") || !strings.Contains(out, "snake") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, expected 1", got)
	}
}

func TestEveryColorHasStyle(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDarkGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("color %d has no style", c)
		}
	}
	if want := int(core.ColorDarkGray) + 1; len(colorStyles) != want {
		t.Errorf("%d styles for %d colors", len(colorStyles), want)
	}
}

func TestMenuSelectsRegisteredMode(t *testing.T) {
	if len(registry.List()) == 0 {
		registry.Register("stub", "test mode", func() registry.Game { return &stubGame{} })
	}
	m := NewMenuModel(core.DefaultConfig())
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	menu := next.(MenuModel)
	if menu.Selected() == nil || menu.Selected().ID != registry.List()[0].ID {
		t.Errorf("Selected() = %v, expected the first mode", menu.Selected())
	}
	if !strings.Contains(m.View(), "S N A K E") {
		t.Error("menu view missing title")
	}
}
