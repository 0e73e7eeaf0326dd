package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Print the configuration the game would run with, after applying
--config and --difficulty. Use --defaults to print the built-in file,
a good starting point for ~/.arkanoid/configs/arkanoid.yaml.

Examples:
  arkanoid config
  arkanoid config --difficulty hard
  arkanoid config --defaults > ~/.arkanoid/configs/arkanoid.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		_, _ = os.Stdout.Write(config.DefaultYAML())
		return
	}

	logger := newLogger(os.Stderr, "arkanoid")

	cfg, err := loadGameConfig(logger)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		logger.Error("could not encode configuration", "error", err)
		os.Exit(1)
	}
	fmt.Print(string(data))
}
