package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			slog.Error("failed to rollback transaction", "error", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// columnIDs returns the ordered candidate ids of one column inside tx
func columnIDs(ctx context.Context, tx *sql.Tx, column string) ([]string, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id FROM candidates WHERE column_id = ? ORDER BY position, id", column)
	if err != nil {
		return nil, fmt.Errorf("failed to list column %s: %w", column, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// writeColumn assigns column and positions 0..n-1 to ids
func writeColumn(ctx context.Context, tx *sql.Tx, column string, ids []string) error {
	for pos, id := range ids {
		if _, err := tx.ExecContext(ctx,
			"UPDATE candidates SET column_id = ?, position = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			column, pos, id); err != nil {
			return fmt.Errorf("failed to place %s in %s: %w", id, column, err)
		}
	}
	return nil
}

func without(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func insertAt(ids []string, idx int, id string) []string {
	idx = max(0, min(idx, len(ids)))
	out := make([]string, 0, len(ids)+1)
	out = append(out, ids[:idx]...)
	out = append(out, id)
	return append(out, ids[idx:]...)
}
