package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sunskim/internal/config"
	"github.com/vovakirdan/sunskim/internal/platform/tui"
	"github.com/vovakirdan/sunskim/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start Sun Skimmer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for the
scoreboard. After a game ends, you return to the menu to play again.

Examples:
  sunskim menu
  sunskim menu --fps 30
  sunskim menu --difficulty hard --telemetry ./runs`,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := openLogFile()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := configureGames(logger); err != nil {
		logger.Error("menu failed", "err", err)
		return err
	}

	hooks := openHooks(logger, config.ModeShield)
	defer closeHooks(hooks)

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(hooks.Store, cfg)
		if err != nil {
			logger.Error("menu failed", "err", err)
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(hooks.Store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed per game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, hooks, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
	return nil
}
