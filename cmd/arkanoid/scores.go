package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  arkanoid scores
  arkanoid scores --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func runScores(_ *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr, "arkanoid")

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Error("could not open scores database", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	scores, err := store.TopScores(arkanoid.LeaderboardSize)
	if err != nil {
		logger.Error("could not read scores", "error", err)
		store.Close()
		os.Exit(1)
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245"))

	fmt.Println(titleStyle.Render("High Scores - Arkanoid"))
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores available.")
		fmt.Println()
		fmt.Println("Play 'arkanoid play' to set the first high score!")
		return
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("  %-4s  %-16s  %-6s  %-5s  %s", "Rank", "Name", "Score", "Level", "Date")))
	for i, e := range scores {
		date := ""
		if !e.PlayedAt.IsZero() {
			date = e.PlayedAt.Format(storage.DateLayout)
		}
		fmt.Printf("  %-4d  %-16s  %-6d  %-5d  %s\n", i+1, e.Name, e.Score, e.Level, date)
	}

	fmt.Println()
	stats, err := store.Stats()
	if err != nil {
		logger.Warn("could not read stats", "error", err)
		return
	}
	fmt.Printf("Best: %d (level %d) over %d games\n", stats.HighScore, stats.BestLevel, stats.GamesCount)
}
