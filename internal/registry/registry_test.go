package registry

import (
	"testing"

	"github.com/vovakirdan/cubesnake/internal/core"
)

type fakeGame struct{ id string }

func (g *fakeGame) ID() string { return g.id }
func (g *fakeGame) Title() string { return "Fake " + g.id }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen) {}
func (g *fakeGame) State() core.GameState { return core.GameState{} }

func register(t *testing.T, id string) {
	t.Helper()
	Register(id, "description of "+id, func() Game { return &fakeGame{id: id} })
	t.Cleanup(func() {
		mu.Lock()
		delete(entries, id)
		mu.Unlock()
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "zeta")
	register(t, "alpha")

	games := List()
	if len(games) != 2 || games[0].ID != "alpha" || games[1].ID != "zeta" {
		t.Fatalf("List() = %+v, expected alpha then zeta", games)
	}
	if games[0].Title != "Fake alpha" || games[0].Description != "description of alpha" {
		t.Errorf("unexpected metadata %+v", games[0])
	}

	g, err := Create("zeta")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zeta" {
		t.Errorf("Create returned %q", g.ID())
	}
	if !Exists("alpha") || Exists("missing") {
		t.Error("Exists reports wrong membership")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("missing"); err == nil {
		t.Error("expected an error for an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "dup")
	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup", "", func() Game { return &fakeGame{id: "dup"} })
}
