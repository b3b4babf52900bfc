// Package storage provides SQLite-based persistence for the algorithm
// library and playback history. Puzzle state itself is never stored.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Algorithm is a named move sequence saved for a puzzle.
type Algorithm struct {
	ID        string
	PuzzleID  string
	Name      string
	Moves     string // Space separated tokens
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Run records one playback of an algorithm.
type Run struct {
	ID        int64
	SessionID string // SSH session or "local"
	PuzzleID  string
	Moves     string
	MoveCount int
	Duration  time.Duration
	CreatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS algorithms (
			id TEXT PRIMARY KEY,
			puzzle_id TEXT NOT NULL,
			name TEXT NOT NULL,
			moves TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (puzzle_id, name)
		);
		CREATE INDEX IF NOT EXISTS idx_algorithms_puzzle_id ON algorithms(puzzle_id);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			puzzle_id TEXT NOT NULL,
			moves TEXT NOT NULL,
			move_count INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_puzzle_id ON runs(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_runs_session_id ON runs(session_id);
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

// ErrEmptyName is returned when saving an algorithm without a name.
var ErrEmptyName = errors.New("storage: algorithm name is empty")

// SaveAlgorithm stores moves under name for the puzzle, replacing the moves
// of an existing algorithm with the same name.
func (s *Store) SaveAlgorithm(puzzleID, name, moves string) (*Algorithm, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	_, err := s.db.Exec(
		`INSERT INTO algorithms (id, puzzle_id, name, moves)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (puzzle_id, name)
		 DO UPDATE SET moves = excluded.moves, updated_at = CURRENT_TIMESTAMP`,
		uuid.NewString(), puzzleID, name, moves,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot save algorithm: %w", err)
	}

	return s.AlgorithmByName(puzzleID, name)
}

const algorithmColumns = `id, puzzle_id, name, moves, created_at, updated_at`

func scanAlgorithm(row interface{ Scan(...any) error }) (*Algorithm, error) {
	var a Algorithm
	var createdAt, updatedAt any
	if err := row.Scan(&a.ID, &a.PuzzleID, &a.Name, &a.Moves, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	a.CreatedAt = parseTime(createdAt)
	a.UpdatedAt = parseTime(updatedAt)
	return &a, nil
}

// AlgorithmByName retrieves a saved algorithm. Returns nil if none exists.
func (s *Store) AlgorithmByName(puzzleID, name string) (*Algorithm, error) {
	a, err := scanAlgorithm(s.db.QueryRow(
		`SELECT `+algorithmColumns+` FROM algorithms WHERE puzzle_id = ? AND name = ?`,
		puzzleID, name,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query algorithm: %w", err)
	}
	return a, nil
}

// Algorithms lists saved algorithms ordered by puzzle and name.
// An empty puzzleID lists every puzzle.
func (s *Store) Algorithms(puzzleID string) ([]Algorithm, error) {
	query := `SELECT ` + algorithmColumns + ` FROM algorithms`
	var args []any
	if puzzleID != "" {
		query += ` WHERE puzzle_id = ?`
		args = append(args, puzzleID)
	}
	query += ` ORDER BY puzzle_id, name`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query algorithms: %w", err)
	}
	defer rows.Close()

	var out []Algorithm
	for rows.Next() {
		a, err := scanAlgorithm(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// DeleteAlgorithm removes an algorithm by puzzle and name.
// Reports whether a row was deleted.
func (s *Store) DeleteAlgorithm(puzzleID, name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM algorithms WHERE puzzle_id = ? AND name = ?", puzzleID, name)
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete algorithm: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// RecordRun stores a finished playback.
// Returns the ID of the inserted record.
func (s *Store) RecordRun(run Run) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (session_id, puzzle_id, moves, move_count, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		run.SessionID,
		run.PuzzleID,
		run.Moves,
		run.MoveCount,
		run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty puzzleID includes every puzzle.
func (s *Store) RecentRuns(puzzleID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, session_id, puzzle_id, moves, move_count, duration_ms, created_at FROM runs`
	var args []any
	if puzzleID != "" {
		query += ` WHERE puzzle_id = ?`
		args = append(args, puzzleID)
	}
	query += ` ORDER BY id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SessionID, &r.PuzzleID, &r.Moves, &r.MoveCount, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// PuzzleStats contains aggregated playback statistics for a puzzle.
type PuzzleStats struct {
	PuzzleID   string
	Runs       int
	TotalMoves int64
	AvgMoves   float64
	LastPlayed time.Time
}

// GetPuzzleStats retrieves aggregated statistics for a specific puzzle.
func (s *Store) GetPuzzleStats(puzzleID string) (*PuzzleStats, error) {
	stats := &PuzzleStats{PuzzleID: puzzleID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(move_count), 0), COALESCE(AVG(move_count), 0), MAX(created_at)
		 FROM runs WHERE puzzle_id = ?`,
		puzzleID,
	).Scan(&stats.Runs, &stats.TotalMoves, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime converts a DATETIME column to time.Time - handle both time.Time and string.
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
