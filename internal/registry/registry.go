// Package registry keeps the catalogue of playable modes. Game packages add
// their modes from init(); the CLI, menu and SSH server only see this package.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/sunskim/internal/core"
)

// Game is a playable mode. Implementations hold no terminal state; the
// platform owns input mapping, tick timing, audio and drawing to the terminal.
type Game interface {
	// ID is the stable key used on the command line and in the runs table.
	ID() string
	Title() string

	// Reset begins a new run with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one fixed tick.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)
	State() core.GameState

	// End releases everything owned by the current run.
	End()
}

// Mode describes a registered game for listings.
type Mode struct {
	ID      string
	Title   string
	Summary string
	Order   int // Listing position, lower first; ties fall back to ID
}

// Factory builds a fresh game for one run loop.
type Factory func() Game

type entry struct {
	mode    Mode
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a mode. Registering the same ID twice panics, as does an
// empty ID or a nil factory. An empty title is taken from a built game.
func Register(m Mode, f Factory) {
	if m.ID == "" || f == nil {
		panic("registry: mode needs an ID and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[m.ID]; dup {
		panic(fmt.Sprintf("registry: mode %q registered twice", m.ID))
	}
	if m.Title == "" {
		m.Title = f().Title()
	}
	entries[m.ID] = entry{mode: m, factory: f}
}

// List returns every mode in listing order.
func List() []Mode {
	mu.RLock()
	modes := make([]Mode, 0, len(entries))
	for _, e := range entries {
		modes = append(modes, e.mode)
	}
	mu.RUnlock()

	slices.SortFunc(modes, func(a, b Mode) int {
		return cmp.Or(cmp.Compare(a.Order, b.Order), cmp.Compare(a.ID, b.ID))
	})
	return modes
}

// Lookup returns the descriptor for id.
func Lookup(id string) (Mode, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := entries[id]
	return e.mode, ok
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(), nil
}
