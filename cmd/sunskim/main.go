// sunskim is an orbital arcade game for the terminal: skim the sun for
// power, keep your shield up, and survive the supernova.
//
// Usage:
//
//	sunskim list                - List available modes
//	sunskim play [mode]         - Play a mode (default: sunskim)
//	sunskim menu                - Pick modes interactively
//	sunskim serve               - Start SSH server for remote play
//	sunskim scores <mode>       - Show best runs for a mode
//	sunskim config              - Print the default config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.sunskim/scores.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/sunskim/internal/games/sunskim"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sunskim",
	Short: "Sun Skimmer - orbit a sun in your terminal",
	Long: `Sun Skimmer is an orbital arcade game. Hold thrust to dive toward the
sun and gain power, release to climb back before your shield burns out.
Every so often the sun goes supernova: ride it out on autopilot, then dodge
the debris ring.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print the default config

Examples:
  sunskim play
  sunskim play sunskim_heat --difficulty hard
  sunskim menu
  sunskim serve --ssh :2222
  sunskim scores sunskim --stats`,
}

func init() {
	// main prints the error once
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sunskim/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogFile creates a logger writing to ~/.sunskim/sunskim.log, keeping
// the alternate screen clean. The returned close func is never nil.
func openLogFile() (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, func() {}, fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".sunskim")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, func() {}, fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "sunskim.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, func() {}, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "sunskim",
	})
	return logger, func() { f.Close() }, nil
}

// stderrLogger creates a logger for commands that own the terminal.
func stderrLogger(prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          prefix,
	}), nil
}
