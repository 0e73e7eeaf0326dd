package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

// NoScoresMessage is shown when the leaderboard cannot be read or is empty.
const NoScoresMessage = "No scores available."

// Scoreboard renders the leaderboard shown after a session ends.
// It is a component of Model, not a standalone program.
type Scoreboard struct {
	summary arkanoid.Summary
	table   table.Model
	styles  scoreboardStyles
	width   int
	height  int
}

type scoreboardStyles struct {
	title  lipgloss.Style
	result lipgloss.Style
	err    lipgloss.Style
	empty  lipgloss.Style
	frame  lipgloss.Style
}

func newScoreboardStyles(r *lipgloss.Renderer) scoreboardStyles {
	return scoreboardStyles{
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")),
		result: r.NewStyle().
			Foreground(lipgloss.Color("#4b0082")).
			Bold(true),
		err: r.NewStyle().
			Foreground(lipgloss.Color("9")),
		empty: r.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4),
		frame: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
	}
}

// NewScoreboard creates a leaderboard view for a finished session.
func NewScoreboard(sum arkanoid.Summary, r *lipgloss.Renderer, width, height int) Scoreboard {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	sb := Scoreboard{
		summary: sum,
		styles:  newScoreboardStyles(r),
		width:   width,
		height:  height,
	}
	sb.table = sb.createTable()
	sb.table.SetRows(ScoreRows(sum.Top))
	return sb
}

// createTable creates a new table with appropriate columns.
func (sb *Scoreboard) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Name", Width: 16},
		{Title: "Score", Width: 7},
		{Title: "Level", Width: 6},
		{Title: "Date", Width: 19},
	}

	// Shrink the name column on narrow terminals
	if avail := sb.width - 4 - 2*len(columns); avail < 60 {
		columns[1].Width = max(avail-5-7-6-19, 6)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(min(arkanoid.LeaderboardSize+1, sb.height-10), 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// ScoreRows converts leaderboard records to table rows.
func ScoreRows(records []arkanoid.ScoreRecord) []table.Row {
	rows := make([]table.Row, len(records))
	for i, r := range records {
		date := ""
		if !r.PlayedAt.IsZero() {
			date = r.PlayedAt.Format("2006-01-02 15:04:05")
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Name,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Level),
			date,
		}
	}
	return rows
}

// SetSize updates the layout for a new terminal size.
func (sb *Scoreboard) SetSize(width, height int) {
	sb.width = width
	sb.height = height
	sb.table = sb.createTable()
	sb.table.SetRows(ScoreRows(sb.summary.Top))
}

// Update scrolls the table.
func (sb Scoreboard) Update(msg tea.Msg) (Scoreboard, tea.Cmd) {
	var cmd tea.Cmd
	sb.table, cmd = sb.table.Update(msg)
	return sb, cmd
}

// View renders the final score, any save error and the top scores.
func (sb Scoreboard) View() string {
	var b strings.Builder

	b.WriteString(sb.styles.title.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	rec := sb.summary.Record
	b.WriteString(sb.styles.result.Render(
		fmt.Sprintf("Final score: %d  |  Level: %d", rec.Score, rec.Level),
	))
	b.WriteString("\n")

	if sb.summary.SaveErr != nil {
		b.WriteString(sb.styles.err.Render("Could not save score: " + sb.summary.SaveErr.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if sb.summary.TopErr != nil || len(sb.summary.Top) == 0 {
		b.WriteString(sb.styles.frame.Render(sb.styles.empty.Render(NoScoresMessage)))
	} else {
		b.WriteString(sb.styles.frame.Render(sb.table.View()))
	}

	return b.String()
}
