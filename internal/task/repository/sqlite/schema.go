package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the task schema if it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			series_id TEXT NOT NULL,
			series_index INTEGER NOT NULL DEFAULT 1,
			title TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			priority TEXT NOT NULL DEFAULT 'medium',
			project TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			due_date TEXT,
			due_time TEXT NOT NULL DEFAULT '',
			duration_minutes INTEGER NOT NULL DEFAULT 0,
			recurrence TEXT NOT NULL DEFAULT '{}',
			completed INTEGER NOT NULL DEFAULT 0,
			completed_at TEXT,
			calendar_event_id TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_user_completed_due ON tasks(user_id, completed, due_date);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_series ON tasks(series_id, series_index);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
