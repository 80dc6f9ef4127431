package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sunskim/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default config",
	Long: `Print the embedded default config as YAML.

Save it to ~/.sunskim/configs/sunskim.yaml (or ./configs/sunskim.yaml) and
edit any value; missing keys keep their defaults.

Examples:
  sunskim config > ~/.sunskim/configs/sunskim.yaml
  sunskim play --config ./my-sunskim.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		//nolint:errcheck // Nothing useful to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
	},
}
