package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sunskim/internal/core"
	"github.com/vovakirdan/sunskim/internal/registry"
)

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	hooks      Hooks
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	engage     EngageState
	last       core.StepResult
	started    bool // At least one tick simulated since the last reset
	quitting   bool
	backToMenu bool
	allowBack  bool // B/Esc returns to a menu instead of being ignored
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, hooks Hooks, cfg core.RuntimeConfig) Model {
	cfg = cfg.Normalized()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		hooks:      hooks,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.engage.HandleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.abandon()
		m.quitting = true
		return m, tea.Quit
	}

	state := m.last.State
	switch action {
	case core.ActionEngage:
		m.engage.Toggle()
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionBack:
		if m.allowBack && (state.GameOver || state.Paused) {
			m.abandon()
			m.backToMenu = true
		} else if !m.allowBack {
			m.inputFrame.Set(core.ActionPause)
		}
	case core.ActionRestart:
		if state.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The view is centered on
// the player, so the running session survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.last.State.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.last = core.StepResult{State: m.game.State()}
		m.engage.Reset()
		m.started = false
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config)
	}

	if m.engage.Engaged() {
		m.inputFrame.Set(core.ActionEngage)
	}

	result := m.game.Step(m.inputFrame)
	m.last = result
	m.started = true
	// Once the run is recorded, Step only repeats the final readout.
	if !m.runSaved {
		m.hooks.observe(result)
	}

	// Record the run on game over (once)
	if result.State.GameOver && !m.runSaved {
		m.hooks.finish(m.game.ID(), m.config.Seed, result)
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config)
}

// abandon records a run the player walked away from and tears the session
// down.
func (m *Model) abandon() {
	if m.started && !m.runSaved {
		m.hooks.finish(m.game.ID(), m.config.Seed, m.last)
		m.runSaved = true
	}
	m.game.End()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".sunskim", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Engaged reports whether thrust is currently applied.
func (m Model) Engaged() bool {
	return m.engage.Engaged()
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, hooks Hooks, cfg core.RuntimeConfig) error {
	model := NewModel(game, hooks, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse button press/release drives thrust
	)

	_, err := p.Run()
	return err
}
