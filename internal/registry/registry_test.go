package registry

import (
	"testing"

	"github.com/vovakirdan/sunskim/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen) {}
func (g stubGame) State() core.GameState { return core.GameState{} }
func (g stubGame) End() {}

func withEmptyRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := entries
	entries = map[string]entry{}
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		entries = saved
		mu.Unlock()
	})
}

func register(id string, order int) {
	Register(Mode{ID: id, Order: order}, func() Game { return stubGame{id: id} })
}

func TestListOrder(t *testing.T) {
	withEmptyRegistry(t)
	register("zeta", 0)
	register("beta", 1)
	register("alpha", 1)

	got := List()
	want := []string{"zeta", "alpha", "beta"}
	if len(got) != len(want) {
		t.Fatalf("List() len = %d, expected %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("List()[%d] = %s, expected %s", i, got[i].ID, id)
		}
	}
}

func TestRegisterFillsTitle(t *testing.T) {
	withEmptyRegistry(t)
	register("solo", 0)

	m, ok := Lookup("solo")
	if !ok {
		t.Fatal("Lookup(solo) not found")
	}
	if m.Title != "Stub solo" {
		t.Errorf("Title = %q, expected title from the game", m.Title)
	}
}

func TestCreate(t *testing.T) {
	withEmptyRegistry(t)
	register("solo", 0)

	g, err := Create("solo")
	if err != nil {
		t.Fatalf("Create(solo): %v", err)
	}
	if g.ID() != "solo" {
		t.Errorf("ID() = %s, expected solo", g.ID())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withEmptyRegistry(t)
	register("solo", 0)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	register("solo", 1)
}
