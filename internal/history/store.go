package history

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"

	"washline/internal/config"
)

// Store persists benchmark runs in SQLite. A flock beside the database
// serializes writer processes so two concurrent benchmarks cannot
// interleave their history rows.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the history database under the data
// directory and applies the schema. It fails when another washline process
// already holds the history lock.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	lock := flock.New(filepath.Join(cfg.Storage.DataDir, "history.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire history lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("history database is locked by another washline process (%s)", lock.Path())
	}

	dbPath := filepath.Join(cfg.Storage.DataDir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath, lock: lock}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}
	return store, nil
}

// Close closes the database and releases the history lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var err error
	if s.db != nil {
		err = s.db.Close()
	}
	if s.lock != nil {
		if unlockErr := s.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Record inserts one benchmark run.
func (s *Store) Record(ctx context.Context, rec *Record) error {
	if rec.ID == "" {
		return fmt.Errorf("record requires an ID")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			id, session_id, strategy, item_count, seed,
			execution_ms, throughput, avg_dish_ms, dishes_done,
			abandoned_workers, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.SessionID,
		rec.Strategy,
		rec.ItemCount,
		rec.Seed,
		rec.ExecutionMS,
		rec.Throughput,
		rec.AvgDishMS,
		rec.DishesDone,
		rec.AbandonedWorkers,
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// List returns the most recent runs, newest first. A non-positive limit
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	query := `
		SELECT id, session_id, strategy, item_count, seed,
			execution_ms, throughput, avg_dish_ms, dishes_done,
			abandoned_workers, created_at
		FROM runs ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt string
		if err := rows.Scan(
			&rec.ID,
			&rec.SessionID,
			&rec.Strategy,
			&rec.ItemCount,
			&rec.Seed,
			&rec.ExecutionMS,
			&rec.Throughput,
			&rec.AvgDishMS,
			&rec.DishesDone,
			&rec.AbandonedWorkers,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at %q for run %s: %w", createdAt, rec.ID, err)
		}
		rec.CreatedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

// Clear removes every recorded run.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		return fmt.Errorf("clear runs: %w", err)
	}
	return nil
}
