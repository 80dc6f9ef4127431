package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sunskim/internal/audio"
	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/core"
	"github.com/vovakirdan/sunskim/internal/games/sunskim"
	"github.com/vovakirdan/sunskim/internal/platform/tui"
	"github.com/vovakirdan/sunskim/internal/registry"
	"github.com/vovakirdan/sunskim/internal/storage"
	"github.com/vovakirdan/sunskim/internal/telemetry"
)

var (
	flagConfig            string
	flagDifficulty        string
	flagTelemetry         string
	flagTelemetryInterval float64
	flagMute              bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: sunskim).

Modes:
  sunskim       - Shield drains near the sun
  sunskim_heat  - Heat builds near the sun

Controls:
  Mouse button  - Hold for thrust
  Space         - Toggle thrust
  P/Esc         - Pause
  R             - Restart (after game over)
  Ctrl+S        - Screenshot
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  sunskim play
  sunskim play sunskim_heat --difficulty hard
  sunskim play --config ./my-sunskim.yaml
  sunskim play --seed 42 --telemetry ./runs --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that runs games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagTelemetry, "telemetry", "", "Directory for CSV telemetry (disabled if empty)")
	cmd.Flags().Float64Var(&flagTelemetryInterval, "telemetry-interval", 0.25, "Telemetry sampling period in game seconds")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := sunskim.IDShield
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'sunskim list' to see available modes)", gameID)
	}

	logger, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := play(logger, gameID); err != nil {
		logger.Error("play failed", "mode", gameID, "err", err)
		return err
	}
	return nil
}

func play(logger *log.Logger, gameID string) error {
	if err := configureGames(logger); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	hooks := openHooks(logger, modeOf(gameID))
	defer closeHooks(hooks)

	if err := tui.Run(game, hooks, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// configureGames applies the shared flags to the game package before any
// game is created.
func configureGames(logger *log.Logger) error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.LoadSunskim(flagConfig); err != nil {
			return err
		}
	}

	sunskim.SetConfigPath(flagConfig)
	sunskim.SetDifficultyPreset(flagDifficulty)
	sunskim.SetLogger(logger)
	return nil
}

// runtimeConfig sizes the simulation to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func modeOf(gameID string) string {
	if gameID == sunskim.IDHeat {
		return config.ModeHeat
	}
	return config.ModeShield
}

// openHooks opens storage, audio and telemetry. Each one that fails is
// logged and left out; the game runs regardless.
func openHooks(logger *log.Logger, mode string) tui.Hooks {
	hooks := tui.Hooks{Logger: logger}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
	} else {
		hooks.Store = store
	}

	if !flagMute {
		sound := audio.NewSoundManager(nil)
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			hooks.Sound = sound
		}
	}

	rec, err := telemetry.NewRecorder(flagTelemetry, flagTelemetryInterval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: telemetry disabled: %v\n", err)
		logger.Warn("telemetry disabled", "err", err)
	} else if rec != nil {
		cfg, cfgErr := config.LoadSunskim(flagConfig)
		if cfgErr != nil {
			cfg = config.DefaultSunskimConfig()
		}
		preset, _ := config.ParsePreset(flagDifficulty)
		config.ApplySunskimPreset(&cfg, preset)
		cfg.Resources.Mode = mode
		if err := rec.WriteConfig(cfg); err != nil {
			logger.Warn("could not save telemetry config", "err", err)
		}
		hooks.Recorder = rec
		logger.Info("recording telemetry", "dir", rec.Dir())
	}

	return hooks
}

func closeHooks(h tui.Hooks) {
	h.Sound.Cleanup()
	if err := h.Recorder.Close(); err != nil {
		h.Logger.Warn("closing telemetry", "err", err)
	}
	if h.Store != nil {
		h.Store.Close()
	}
}
