// Package tui runs Arkanoid in the terminal with Bubble Tea. It drives the
// fixed-rate tick loop, maps keys to paddle commands, collects the player's
// name when a session ends and shows the leaderboard. The same model serves
// local play and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends one tick message after a
// frame interval at the given rate. The model reschedules it each frame.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(max(tickRate, 1))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
