// Package storage provides SQLite-based persistence for puzzle run history.
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

	"github.com/vovakirdan/aoc2021/internal/config"
	"github.com/vovakirdan/aoc2021/internal/runner"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunEntry represents one recorded solve.
type RunEntry struct {
	ID          int64
	PuzzleID    string
	Part1       string
	Part2       string
	InputDigest string
	Elapsed     time.Duration
	CreatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath = config.ExpandHome(dbPath)

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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			puzzle_id TEXT NOT NULL,
			part1 TEXT NOT NULL,
			part2 TEXT NOT NULL,
			input_digest TEXT NOT NULL,
			elapsed_us INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_puzzle_id ON runs(puzzle_id);
		CREATE INDEX IF NOT EXISTS idx_runs_digest ON runs(puzzle_id, input_digest);
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

// SaveRun records a solve result.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(res runner.Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (puzzle_id, part1, part2, input_digest, elapsed_us)
		 VALUES (?, ?, ?, ?, ?)`,
		res.PuzzleID, res.Answer.Part1, res.Answer.Part2, res.Digest, res.Elapsed.Microseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, puzzle_id, part1, part2, input_digest, elapsed_us, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunEntry, error) {
	var e RunEntry
	var elapsedUS int64
	var createdAt any
	if err := row.Scan(&e.ID, &e.PuzzleID, &e.Part1, &e.Part2, &e.InputDigest, &elapsedUS, &createdAt); err != nil {
		return e, err
	}
	e.Elapsed = time.Duration(elapsedUS) * time.Microsecond
	e.CreatedAt = parseTime(createdAt)
	return e, nil
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

func (s *Store) queryRuns(query string, args ...any) ([]RunEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// RecentRuns retrieves the latest runs for a puzzle, newest first.
// An empty puzzleID returns runs of every puzzle.
func (s *Store) RecentRuns(puzzleID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	if puzzleID == "" {
		return s.queryRuns(
			`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`,
			limit,
		)
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE puzzle_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		puzzleID, limit,
	)
}

// LastRun returns the most recent run of a puzzle on the given input,
// or nil if that input was never solved.
func (s *Store) LastRun(puzzleID, digest string) (*RunEntry, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE puzzle_id = ? AND input_digest = ?
		 ORDER BY id DESC
		 LIMIT 1`,
		puzzleID, digest,
	)
	e, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query last run: %w", err)
	}
	return &e, nil
}

// ClearRuns deletes all runs for the given puzzle.
func (s *Store) ClearRuns(puzzleID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE puzzle_id = ?", puzzleID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// PuzzleStats contains aggregated statistics for a puzzle.
type PuzzleStats struct {
	PuzzleID   string
	Runs       int
	Inputs     int
	Fastest    time.Duration
	AvgElapsed time.Duration
	LastSolved time.Time
}

// AllStats retrieves statistics for every puzzle that has been run.
func (s *Store) AllStats() (map[string]*PuzzleStats, error) {
	rows, err := s.db.Query(
		`SELECT puzzle_id, COUNT(*), COUNT(DISTINCT input_digest),
		        MIN(elapsed_us), AVG(elapsed_us), MAX(created_at)
		 FROM runs
		 GROUP BY puzzle_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get puzzle stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*PuzzleStats)
	for rows.Next() {
		var ps PuzzleStats
		var fastest int64
		var avg float64
		var lastSolved any
		if err := rows.Scan(&ps.PuzzleID, &ps.Runs, &ps.Inputs, &fastest, &avg, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ps.Fastest = time.Duration(fastest) * time.Microsecond
		ps.AvgElapsed = time.Duration(avg * float64(time.Microsecond))
		ps.LastSolved = parseTime(lastSolved)
		stats[ps.PuzzleID] = &ps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
