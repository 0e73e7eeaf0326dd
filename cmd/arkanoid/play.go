package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var flagLogPath string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Arkanoid in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Left/A/H     - Move paddle left
  Right/D/L    - Move paddle right
  Space/Down/S - Stop paddle
  P/Esc        - Pause
  Ctrl+S       - Save a text screenshot to ~/.arkanoid/screenshots
  Q/Ctrl+C     - Quit

The paddle keeps moving in the last direction until you stop it or
reverse it. When the ball falls out you are asked for a name, your
score is saved and the top 10 are shown. Press R there to play again.

Difficulty options:
  easy   - Slower ball and paddle
  normal - Default speeds
  hard   - Faster ball and paddle

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --seed 42 --log ./arkanoid.log
  arkanoid play --config ./my-arkanoid.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogPath, "log", "", "Write logs to this file (the terminal is owned by the game)")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	var logOut io.Writer
	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-supplied log path
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, "arkanoid")

	gameCfg, err := loadGameConfig(logger)
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil { //#nosec G115 -- fd fits in int
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{
		Logger:     logger,
		PlayerName: os.Getenv("USER"),
	}
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		opts.ScreenshotDir = filepath.Join(home, ".arkanoid", "screenshots")
	}

	// The game still works without storage; the leaderboard reports it
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
		opts.Leaderboard = store
	}

	logger.Info("starting game", "seed", cfg.Seed, "fps", cfg.TickRate, "difficulty", flagDifficulty)

	if err := tui.Run(arkanoid.New(gameCfg), cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
