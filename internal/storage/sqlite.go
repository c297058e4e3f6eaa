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

// Store manages the SQLite database connection for result history.
type Store struct {
	db *sql.DB
}

// Result is one finished game.
type Result struct {
	ID       int64
	Winner   string // "X", "O", or empty for a tie
	Starting string // Mark that opened the game
	Moves    int
	Session  string // Local user or SSH user name
	// CreatedAt is set by the database on insert.
	CreatedAt time.Time
}

// Tie reports whether the game ended without a winner.
func (r Result) Tie() bool {
	return r.Winner == ""
}

// Totals aggregates all recorded results.
type Totals struct {
	Games int
	WinsX int
	WinsO int
	Ties  int
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

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			winner TEXT NOT NULL DEFAULT '',
			starting TEXT NOT NULL,
			moves INTEGER NOT NULL,
			session TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
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
	res, err := s.db.Exec(
		"INSERT INTO results (winner, starting, moves, session) VALUES (?, ?, ?, ?)",
		r.Winner, r.Starting, r.Moves, r.Session,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, winner, starting, moves, session, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Winner, &r.Starting, &r.Moves, &r.Session, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Totals counts wins per mark and ties over every recorded game.
func (s *Store) Totals() (Totals, error) {
	var t Totals
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'X' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'O' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = '' THEN 1 ELSE 0 END), 0)
		 FROM results`,
	).Scan(&t.Games, &t.WinsX, &t.WinsO, &t.Ties)
	if err != nil {
		return Totals{}, fmt.Errorf("storage: cannot get totals: %w", err)
	}
	return t, nil
}

// LastResult returns the most recent result, or nil if none exist.
func (s *Store) LastResult() (*Result, error) {
	var r Result
	var createdAt any
	err := s.db.QueryRow(
		`SELECT id, winner, starting, moves, session, created_at
		 FROM results ORDER BY id DESC LIMIT 1`,
	).Scan(&r.ID, &r.Winner, &r.Starting, &r.Moves, &r.Session, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query last result: %w", err)
	}
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// ClearResults deletes every recorded result.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
