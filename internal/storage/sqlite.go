// Package storage provides SQLite-based persistence for puzzle results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry represents a single cleared-puzzle record.
// Lower move counts are better.
type ResultEntry struct {
	ID           int64
	DifficultyID string
	Moves        int
	CreatedAt    time.Time
}

// DifficultyStats contains aggregated statistics for one difficulty.
type DifficultyStats struct {
	DifficultyID string
	Clears       int
	BestMoves    int
	AvgMoves     float64
	LastCleared  time.Time
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
			difficulty_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_difficulty ON results(difficulty_id);
		CREATE INDEX IF NOT EXISTS idx_results_best ON results(difficulty_id, moves ASC);
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

// SaveResult records a cleared puzzle for the given difficulty.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(difficultyID string, moves int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (difficulty_id, moves) VALUES (?, ?)",
		difficultyID, moves,
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

// TopResults retrieves the best N results for the given difficulty,
// ordered by move count ascending (fewest moves first).
func (s *Store) TopResults(difficultyID string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty_id, moves, created_at
		 FROM results
		 WHERE difficulty_id = ?
		 ORDER BY moves ASC, created_at ASC
		 LIMIT ?`,
		difficultyID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		var e ResultEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.DifficultyID, &e.Moves, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestMoves returns the minimum move count ever achieved for the given
// difficulty. Returns 0 if no puzzle was cleared yet.
func (s *Store) BestMoves(difficultyID string) (int, error) {
	var moves sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(moves) FROM results WHERE difficulty_id = ?",
		difficultyID,
	).Scan(&moves)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best moves: %w", err)
	}

	if !moves.Valid {
		return 0, nil
	}

	return int(moves.Int64), nil
}

// ClearResults deletes all results for the given difficulty.
func (s *Store) ClearResults(difficultyID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE difficulty_id = ?", difficultyID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics for a specific difficulty.
func (s *Store) Stats(difficultyID string) (*DifficultyStats, error) {
	stats := &DifficultyStats{DifficultyID: difficultyID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MIN(moves), 0), COALESCE(AVG(moves), 0)
		 FROM results WHERE difficulty_id = ?`,
		difficultyID,
	).Scan(&stats.Clears, &stats.BestMoves, &stats.AvgMoves)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastCleared any
	err = s.db.QueryRow(
		`SELECT created_at FROM results WHERE difficulty_id = ? ORDER BY created_at DESC LIMIT 1`,
		difficultyID,
	).Scan(&lastCleared)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last cleared: %w", err)
	}
	if err == nil {
		stats.LastCleared = parseTime(lastCleared)
	}

	return stats, nil
}

// parseTime converts a scanned created_at value to time.Time.
// The sqlite driver may hand back either a time.Time or a string.
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
