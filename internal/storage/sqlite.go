// Package storage provides SQLite-based persistence for finished games.
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
)

// Outcome is how a recorded game ended.
type Outcome string

const (
	OutcomeWon       Outcome = "won"
	OutcomeLost      Outcome = "lost"
	OutcomeAbandoned Outcome = "abandoned"
)

// Store manages the SQLite database connection for result persistence.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID            int64
	GameID        string
	Size          int
	MinesPerColor int
	Outcome       Outcome
	Duration      time.Duration
	CreatedAt     time.Time
}

// Won reports whether the game was cleared.
func (r Result) Won() bool {
	return r.Outcome == OutcomeWon
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

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			size INTEGER NOT NULL,
			mines_per_color INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_game_id ON results(game_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(game_id, outcome, duration_ms);
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

// SaveResult records a finished game.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	switch r.Outcome {
	case OutcomeWon, OutcomeLost, OutcomeAbandoned:
	default:
		return 0, fmt.Errorf("storage: cannot save result: unknown outcome %q", r.Outcome)
	}

	result, err := s.db.Exec(
		`INSERT INTO results (game_id, size, mines_per_color, outcome, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		r.GameID, r.Size, r.MinesPerColor, string(r.Outcome), r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, game_id, size, mines_per_color, outcome, duration_ms, created_at`

// BestTimes retrieves the fastest N wins for the given game.
// Results are ordered by duration ascending.
func (s *Store) BestTimes(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE game_id = ? AND outcome = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		gameID, string(OutcomeWon), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	return scanResults(rows)
}

// RecentResults retrieves the most recent N results for the given game,
// newest first. An empty gameID returns results across all games.
func (s *Store) RecentResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// BestTime returns the fastest win for the given game.
// The second result is false if the game has never been won.
func (s *Store) BestTime(gameID string) (time.Duration, bool, error) {
	var ms sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM results WHERE game_id = ? AND outcome = ?",
		gameID, string(OutcomeWon),
	).Scan(&ms)

	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, false, nil
	}

	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// scanResults drains rows into Results and closes them.
func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Size, &r.MinesPerColor, &outcome, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// parseTime converts a DATETIME column value, which the driver may return
// as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Played     int
	Won        int
	Lost       int
	Abandoned  int
	BestTime   time.Duration // Zero if never won
	AvgWinTime time.Duration // Zero if never won
	LastPlayed time.Time
}

// WinRate returns the fraction of games won, or 0 if none were played.
func (g GameStats) WinRate() float64 {
	if g.Played == 0 {
		return 0
	}
	return float64(g.Won) / float64(g.Played)
}

const statsColumns = `
	COUNT(*),
	COALESCE(SUM(CASE WHEN outcome = 'won' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN outcome = 'lost' THEN 1 ELSE 0 END), 0),
	COALESCE(SUM(CASE WHEN outcome = 'abandoned' THEN 1 ELSE 0 END), 0),
	COALESCE(MIN(CASE WHEN outcome = 'won' THEN duration_ms END), 0),
	COALESCE(AVG(CASE WHEN outcome = 'won' THEN duration_ms END), 0),
	MAX(created_at)`

// scanStats fills stats from a row selected with statsColumns.
func scanStats(scan func(dest ...any) error, prefix []any, stats *GameStats) error {
	var bestMS int64
	var avgMS float64
	var lastPlayed any

	dest := append(prefix,
		&stats.Played, &stats.Won, &stats.Lost, &stats.Abandoned,
		&bestMS, &avgMS, &lastPlayed,
	)
	if err := scan(dest...); err != nil {
		return err
	}

	stats.BestTime = time.Duration(bestMS) * time.Millisecond
	stats.AvgWinTime = time.Duration(avgMS * float64(time.Millisecond))
	stats.LastPlayed = parseTime(lastPlayed)
	return nil
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	row := s.db.QueryRow(`SELECT `+statsColumns+` FROM results WHERE game_id = ?`, gameID)
	if err := scanStats(row.Scan, nil, stats); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return stats, nil
		}
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	return stats, nil
}

// GetAllGamesStats retrieves statistics for all games that have been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, ` + statsColumns + `
		 FROM results
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		gs := &GameStats{}
		if err := scanStats(rows.Scan, []any{&gs.GameID}, gs); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[gs.GameID] = gs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
