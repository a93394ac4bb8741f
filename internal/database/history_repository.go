package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/hireboard/internal/models"
)

// HistoryRepo reads the candidate_moves log
type HistoryRepo struct {
	db *sql.DB
}

// ForCandidate returns the newest moves of one candidate first. A limit of
// zero or less returns everything.
func (r *HistoryRepo) ForCandidate(ctx context.Context, candidateID string, limit int) ([]models.MoveRecord, error) {
	return r.query(ctx, "WHERE candidate_id = ?", []any{candidateID}, limit)
}

// Recent returns the newest moves across the whole board
func (r *HistoryRepo) Recent(ctx context.Context, limit int) ([]models.MoveRecord, error) {
	return r.query(ctx, "", nil, limit)
}

func (r *HistoryRepo) query(ctx context.Context, where string, args []any, limit int) ([]models.MoveRecord, error) {
	q := `SELECT id, candidate_id, from_column, to_column, position, moved_by, moved_at
		FROM candidate_moves ` + where + ` ORDER BY moved_at DESC, rowid DESC`
	if limit > 0 {
		q += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query move history: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	var out []models.MoveRecord
	for rows.Next() {
		var (
			rec      models.MoveRecord
			from, to string
		)
		if err := rows.Scan(&rec.ID, &rec.CandidateID, &from, &to, &rec.Position, &rec.MovedBy, &rec.MovedAt); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		rec.FromColumn = models.ColumnID(from)
		rec.ToColumn = models.ColumnID(to)
		out = append(out, rec)
	}
	return out, rows.Err()
}
