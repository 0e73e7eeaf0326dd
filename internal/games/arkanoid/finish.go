package arkanoid

import (
	"errors"
	"time"
)

// LeaderboardSize is the number of entries shown after a session ends.
const LeaderboardSize = 10

var (
	// ErrSessionActive is returned by Finish while the ball is still in play.
	ErrSessionActive = errors.New("arkanoid: session still in progress")

	// ErrSessionFinished is returned by Finish when the session was already handed off.
	ErrSessionFinished = errors.New("arkanoid: session already finished")

	// ErrNoLeaderboard is reported when no score store is available.
	ErrNoLeaderboard = errors.New("arkanoid: no leaderboard available")
)

// ScoreRecord is one finished session as stored on the leaderboard.
type ScoreRecord struct {
	Name     string
	Score    int
	Level    int
	PlayedAt time.Time
}

// Leaderboard persists finished sessions and serves the top scores.
// Top must order by score descending, breaking ties by insertion order.
type Leaderboard interface {
	Record(rec ScoreRecord) error
	Top(n int) ([]ScoreRecord, error)
}

// Summary is the outcome of handing a finished session to the leaderboard.
// Record is always filled from memory, whatever happened to the writes.
type Summary struct {
	Record  ScoreRecord
	SaveErr error
	Top     []ScoreRecord
	TopErr  error
}

// Saved reports whether the record reached the leaderboard.
func (s Summary) Saved() bool {
	return s.SaveErr == nil
}

// Finish hands the final score and level to the leaderboard with the player's
// name, then reads back the top entries. It makes a single best-effort attempt
// at each; failures are reported in the Summary and never alter the game.
// The name is stored as given and may be empty.
func (g *Game) Finish(lb Leaderboard, name string, at time.Time) (Summary, error) {
	if g.state != StateGameOver {
		return Summary{}, ErrSessionActive
	}
	if g.finished {
		return Summary{}, ErrSessionFinished
	}
	g.finished = true

	sum := Summary{
		Record: ScoreRecord{
			Name:     name,
			Score:    g.score,
			Level:    g.level,
			PlayedAt: at,
		},
	}

	if lb == nil {
		sum.SaveErr = ErrNoLeaderboard
		sum.TopErr = ErrNoLeaderboard
		return sum, nil
	}

	sum.SaveErr = lb.Record(sum.Record)
	sum.Top, sum.TopErr = lb.Top(LeaderboardSize)
	if sum.TopErr != nil {
		sum.Top = nil
	}

	return sum, nil
}
