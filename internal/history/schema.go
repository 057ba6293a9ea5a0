package history

import (
	"context"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	session_id TEXT NOT NULL,
	strategy TEXT NOT NULL,
	item_count INTEGER NOT NULL,
	seed INTEGER NOT NULL,
	execution_ms REAL NOT NULL,
	throughput REAL NOT NULL,
	avg_dish_ms REAL NOT NULL,
	dishes_done INTEGER NOT NULL,
	abandoned_workers INTEGER NOT NULL DEFAULT 0,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);
CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session_id);
`

func (s *Store) applySchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
