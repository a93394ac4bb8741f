package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order on every start; each statement is idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS candidates (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		score INTEGER NOT NULL CHECK (score BETWEEN 0 AND 100),
		avatar_url TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		applied_date TEXT NOT NULL DEFAULT '',
		match_summary TEXT NOT NULL DEFAULT '',
		column_id TEXT NOT NULL CHECK (column_id IN ('new', 'screening', 'interview', 'offer', 'rejected')),
		position INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidates_column
		ON candidates(column_id, position)`,
	`CREATE TABLE IF NOT EXISTS candidate_moves (
		id TEXT PRIMARY KEY,
		request_id TEXT NOT NULL DEFAULT '',
		candidate_id TEXT NOT NULL,
		from_column TEXT NOT NULL,
		to_column TEXT NOT NULL,
		position INTEGER NOT NULL,
		moved_by TEXT NOT NULL,
		moved_at DATETIME NOT NULL,
		FOREIGN KEY (candidate_id) REFERENCES candidates(id) ON DELETE CASCADE
	)`,
	`CREATE INDEX IF NOT EXISTS idx_candidate_moves_candidate
		ON candidate_moves(candidate_id, moved_at)`,
}

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
