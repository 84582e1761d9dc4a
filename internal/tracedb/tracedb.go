// Package tracedb records demo runs of the keycell CLI in a SQLite
// database, one row per performed list operation.
package tracedb

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Config holds parameters for Open.
type Config struct {
	// DataDir is the directory holding the trace database file.
	DataDir string
}

// Config validation errors.
var (
	ErrDataDirEmpty = errors.New("data directory must not be empty")
)

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("trace store is closed")
)

// dbFileName is the SQLite database file created inside DataDir.
const dbFileName = "trace.db"

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}

// Store is an open trace database.
type Store struct {
	mu   sync.Mutex
	open bool
	db   *sql.DB
}

// Run is one recorded operation.
type Run struct {
	RunID     string    // UUID v7, generated on record.
	Op        string    // operation name (build, remove, collect, ...).
	Detail    string    // human-readable outcome.
	CreatedAt time.Time // timestamp of the record.
}

// Open creates DataDir if needed, opens the database, and ensures the
// schema exists.
func Open(cfg Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(cfg.DataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{open: true, db: db}, nil
}

// Close closes the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	return s.db.Close()
}

// Record inserts one run row and returns its ID.
func (s *Store) Record(op, detail string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return "", ErrStoreClosed
	}

	id := generateUUID()
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, op, detail, created_at) VALUES (?, ?, ?, ?)`,
		id, op, detail, createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return id, nil
}

// List returns all recorded runs in insertion order.
func (s *Store) List() ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(
		`SELECT run_id, op, detail, created_at FROM runs ORDER BY created_at, run_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.RunID, &r.Op, &r.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// generateUUID generates a new UUID v7 for run IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
