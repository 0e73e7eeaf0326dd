package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

// phase is the stage of a session shown by the model.
type phase int

const (
	phasePlaying     phase = iota // Ball in play, ticks running
	phaseNameEntry                // Game over, asking for a name
	phaseLeaderboard              // Score handed off, showing the top scores
)

// Options configures a Model beyond the runtime config.
type Options struct {
	// Leaderboard receives the finished session. Leave nil to run without one;
	// the leaderboard screen then reports that no scores are available.
	Leaderboard arkanoid.Leaderboard

	// Logger receives persistence failures and session events. Defaults to a discarding logger.
	Logger *log.Logger

	// PlayerName pre-fills the name prompt.
	PlayerName string

	// ScreenshotDir is where Ctrl+S writes text screenshots. Empty disables screenshots.
	ScreenshotDir string

	// Renderer styles the output. SSH sessions pass a per-session renderer.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model for one player: play, name entry, leaderboard.
type Model struct {
	game       *arkanoid.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	styles     *StyleCache
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	nameInput  textinput.Model
	board      Scoreboard
	phase      phase
	width      int
	height     int
	status     string // One-line notice under the playfield
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *arkanoid.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.Prompt = "Name: "
	ti.Width = 24
	ti.SetValue(opts.PlayerName)

	h := help.New()
	h.ShowAll = false

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:     cfg,
		opts:       opts,
		logger:     logger,
		styles:     NewStyleCache(opts.Renderer),
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		nameInput:  ti,
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// playRows leaves the last terminal row for the help bar.
func playRows(height int) int {
	return max(height-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case TickMsg:
		return m.handleTick()
	}

	if m.phase == phaseNameEntry {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input for the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.phase {
	case phaseNameEntry:
		if key.Matches(msg, m.keys.Confirm) {
			return m.finish(), nil
		}
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd

	case phaseLeaderboard:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Restart):
			return m.restart()
		}
		var cmd tea.Cmd
		m.board, cmd = m.board.Update(msg)
		return m, cmd
	}

	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	// Actions are applied on the next tick
	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events. The playfield is scaled to the
// new size, so the session continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	if m.phase == phaseLeaderboard {
		m.board.SetSize(msg.Width, msg.Height)
	}
	return m
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Ticks still in flight after the session ended stop the loop
	if m.phase != phasePlaying {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.LevelCleared {
		m.logger.Debug("level cleared", "level", result.State.Level, "score", result.State.Score)
	}

	if m.gameState.GameOver {
		m.logger.Info("game over", "score", m.gameState.Score, "level", m.gameState.Level)
		m.phase = phaseNameEntry
		m.status = ""
		return m, m.nameInput.Focus()
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// finish hands the session to the leaderboard and shows the top scores.
func (m Model) finish() Model {
	m.nameInput.Blur()

	sum, err := m.game.Finish(m.opts.Leaderboard, m.nameInput.Value(), time.Now())
	if err != nil {
		// Only reachable if the phase and game disagree
		m.logger.Error("could not finish session", "error", err)
	}
	if sum.SaveErr != nil {
		m.logger.Error("could not save score", "error", sum.SaveErr)
	}
	if sum.TopErr != nil {
		m.logger.Error("could not read leaderboard", "error", sum.TopErr)
	}

	m.board = NewScoreboard(sum, m.styles.Renderer(), m.width, m.height)
	m.phase = phaseLeaderboard
	return m
}

// restart starts a new session with a fresh seed.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.phase = phasePlaying
	m.status = ""
	m.logger.Debug("session restarted", "seed", m.config.Seed)
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}

	m.game.Render(m.screen)

	path, err := WriteScreenshot(m.opts.ScreenshotDir, m.game.ID(), m.screen, time.Now())
	if err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		m.status = "Screenshot failed"
		return
	}
	m.status = "Saved " + filepath.Base(path)
}

// WriteScreenshot writes the screen as plain text into dir and returns the file path.
func WriteScreenshot(dir, prefix string, s *core.Screen, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil { //#nosec G301 -- user data directory
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("%s_%s.txt", prefix, at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(s.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.phase {
	case phaseNameEntry:
		return m.viewNameEntry()
	case phaseLeaderboard:
		return m.viewLeaderboard()
	}

	m.game.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen, m.styles) + "\n" + footer
}

func (m Model) viewNameEntry() string {
	r := m.styles.Renderer()
	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("GAME OVER")
	result := fmt.Sprintf("Score: %d  |  Level: %d", m.gameState.Score, m.gameState.Level)
	hint := r.NewStyle().Foreground(lipgloss.Color("241")).Render("enter to save, ctrl+c to quit")

	panel := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 3).
		Render(lipgloss.JoinVertical(lipgloss.Center, title, "", result, "", m.nameInput.View(), "", hint))

	return r.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}

func (m Model) viewLeaderboard() string {
	body := m.board.View() + "\n\n" + m.help.ShortHelpView(m.keys.LeaderboardHelp())
	return m.styles.Renderer().Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Run starts the Bubble Tea program with the given model.
func Run(game *arkanoid.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
