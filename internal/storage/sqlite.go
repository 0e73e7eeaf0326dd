// Package storage provides SQLite-based persistence for Arkanoid scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-arkanoid/internal/games/arkanoid"
)

// DateLayout is the format of the date column.
const DateLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
// The scores table is append-only: sessions are inserted and read, never updated or deleted.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single row of the scores table.
type ScoreEntry struct {
	ID       int64
	Name     string
	Score    int
	Level    int
	PlayedAt time.Time
}

// Stats contains aggregated statistics over all sessions.
type Stats struct {
	GamesCount int
	HighScore  int
	BestLevel  int
	AvgScore   float64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil { //#nosec G301 -- user data directory
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows one writer; SSH sessions share this handle
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			level INTEGER NOT NULL,
			date TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC, id ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore appends a finished session. The name is stored as given.
// Returns the ID of the inserted record.
func (s *Store) SaveScore(e ScoreEntry) (int64, error) {
	playedAt := e.PlayedAt
	if playedAt.IsZero() {
		playedAt = time.Now()
	}

	result, err := s.db.Exec(
		"INSERT INTO scores (name, score, level, date) VALUES (?, ?, ?, ?)",
		e.Name, e.Score, e.Level, playedAt.Format(DateLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N scores ordered by score descending.
// Equal scores keep insertion order.
func (s *Store) TopScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = arkanoid.LeaderboardSize
	}

	rows, err := s.db.Query(
		`SELECT id, name, score, level, date
		 FROM scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]ScoreEntry, error) {
	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var date string
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Level, &date); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.PlayedAt = parseDate(date)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseDate reads the date column. Unparseable dates come back as zero.
func parseDate(v string) time.Time {
	t, err := time.ParseInLocation(DateLayout, v, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Stats retrieves aggregated statistics over every recorded session.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MAX(level), 0), COALESCE(AVG(score), 0)
		 FROM scores`,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.BestLevel, &stats.AvgScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed string
	err = s.db.QueryRow(`SELECT date FROM scores ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseDate(lastPlayed)
	}

	return stats, nil
}

// Record implements arkanoid.Leaderboard.
func (s *Store) Record(rec arkanoid.ScoreRecord) error {
	_, err := s.SaveScore(ScoreEntry{
		Name:     rec.Name,
		Score:    rec.Score,
		Level:    rec.Level,
		PlayedAt: rec.PlayedAt,
	})
	return err
}

// Top implements arkanoid.Leaderboard.
func (s *Store) Top(n int) ([]arkanoid.ScoreRecord, error) {
	entries, err := s.TopScores(n)
	if err != nil {
		return nil, err
	}

	records := make([]arkanoid.ScoreRecord, len(entries))
	for i, e := range entries {
		records[i] = arkanoid.ScoreRecord{
			Name:     e.Name,
			Score:    e.Score,
			Level:    e.Level,
			PlayedAt: e.PlayedAt,
		}
	}
	return records, nil
}

// Ensure Store implements Leaderboard
var _ arkanoid.Leaderboard = (*Store)(nil)
