// Package sunskim implements Sun Skimmer: an orbital arcade game where the
// player circles a sun, trading shield (or heat) for power while dodging
// asteroids and surviving a recurring supernova.
package sunskim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
	"github.com/vovakirdan/sunskim/internal/registry"
)

// Registered game IDs.
const (
	IDShield = "sunskim"
	IDHeat   = "sunskim_heat"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names fall back
// to the config default.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes session diagnostics of games created afterwards to l.
func SetLogger(l *log.Logger) {
	logger = l
}

// Game adapts a Session to the platform's fixed-tick game interface.
type Game struct {
	mode     string // config.ModeShield or config.ModeHeat
	cfg      *config.SunskimConfig
	runtime  core.RuntimeConfig
	session  *Session
	paused   bool
	camera   core.Vec2
	debris   []debris
	lastRead core.Readout
}

// New creates the shield-mode game.
func New() *Game {
	return &Game{mode: config.ModeShield}
}

// NewHeat creates the heat-mode game.
func NewHeat() *Game {
	return &Game{mode: config.ModeHeat}
}

// NewWithConfig creates a game that skips config loading and runs cfg as is.
func NewWithConfig(cfg config.SunskimConfig) *Game {
	return &Game{mode: cfg.Resources.Mode, cfg: &cfg}
}

func init() {
	registry.Register(registry.Mode{
		ID:      IDShield,
		Title:   "Sun Skimmer",
		Summary: "Shield drains while you skim the sun",
		Order:   0,
	}, func() registry.Game { return New() })
	registry.Register(registry.Mode{
		ID:      IDHeat,
		Title:   "Sun Skimmer (Heat)",
		Summary: "Heat builds while you skim the sun",
		Order:   1,
	}, func() registry.Game { return NewHeat() })
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == config.ModeHeat {
		return IDHeat
	}
	return IDShield
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == config.ModeHeat {
		return "Sun Skimmer (Heat)"
	}
	return "Sun Skimmer"
}

// loadConfig resolves the tunables for a new run.
func (g *Game) loadConfig() config.SunskimConfig {
	if g.cfg != nil {
		return *g.cfg
	}

	cfg, err := config.LoadSunskim(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultSunskimConfig()
	}

	// Apply difficulty preset if set
	config.ApplySunskimPreset(&cfg, difficultyPreset)
	cfg.Resources.Mode = g.mode
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	cfg := g.loadConfig()

	var opts []Option
	if logger != nil {
		opts = append(opts, WithLogger(logger))
	}
	g.session = NewSession(cfg, runtime.Seed, opts...)
	g.paused = false
	g.debris = nil
	g.camera = g.session.PlayerPose().Pos()
	g.lastRead = g.session.Readout()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.session.GameOver() {
		return core.StepResult{State: g.State(), Readout: g.lastRead}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State(), Readout: g.lastRead}
	}

	events := g.session.Advance(g.runtime.TickSeconds(), in.Has(core.ActionEngage))
	g.trackDebris(events)
	g.camera = g.session.PlayerPose().Pos()
	g.lastRead = g.session.Readout()

	return core.StepResult{
		State:   g.State(),
		Events:  events,
		Readout: g.lastRead,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    int(g.session.Score.Value),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
		Reason:   g.session.DeathReason(),
	}
}

// End tears down the session and recenters the camera.
func (g *Game) End() {
	if g.session != nil {
		g.session.End()
	}
	g.debris = nil
	g.camera = core.Vec2{}
}

// Session exposes the running simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Multiplier returns the current score multiplier.
func (g *Game) Multiplier() int {
	if g.session == nil {
		return 1
	}
	return g.session.Score.Multiplier
}
