package db

import (
	"database/sql"
	"fmt"
)

// migrations are executed in order on every open; each statement must be
// idempotent.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL CHECK (kind IN ('story', 'preview')),
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		seconds INTEGER NOT NULL DEFAULT 0,
		peak_cue TEXT NOT NULL DEFAULT 'none',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_kind ON runs(kind)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
