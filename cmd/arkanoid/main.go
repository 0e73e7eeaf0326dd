// arkanoid is a terminal Arkanoid: bounce the ball off the paddle and clear the blocks.
//
// Usage:
//
//	arkanoid play            - Play in this terminal
//	arkanoid scores          - Show the top 10 scores
//	arkanoid serve           - Start SSH server for remote play
//	arkanoid config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--db <path>             - Set database path (default: ~/.arkanoid/scores.db)
//	--config <path>         - Custom config YAML
//	--difficulty <preset>   - easy, normal or hard
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - Break blocks in your terminal",
	Long: `Arkanoid is a terminal remake of the classic block breaker.
Steer the paddle, keep the ball in play and clear every block to
reach the next level. Each level makes the ball faster.

Available commands:
  play     - Play in this terminal
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  arkanoid play
  arkanoid play --difficulty hard
  arkanoid scores
  arkanoid serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arkanoid/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger in the project's format. A nil writer discards.
func newLogger(w io.Writer, prefix string) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
}

// loadGameConfig resolves the game configuration from the global flags.
// A config file that cannot be read or parsed falls back to the defaults with
// a warning; an unknown preset or an invalid config is fatal.
func loadGameConfig(logger *log.Logger) (config.ArkanoidConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ArkanoidConfig{}, err
	}

	cfg, err := config.Resolve(flagConfig, preset)
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, config.ErrInvalidConfig):
		return cfg, err
	}

	logger.Warn("using default config", "error", err)
	cfg = config.DefaultArkanoidConfig()
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}
