package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/user"
)

const candidateColumns = `id, name, role, score, avatar_url, email, applied_date, match_summary, column_id`

// CandidateRepo persists candidates and their board placement
type CandidateRepo struct {
	db  *sql.DB
	now func() time.Time
	who func() string
}

// FetchBoard loads every candidate grouped by column in rank order
func (r *CandidateRepo) FetchBoard(ctx context.Context) (models.Board, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+candidateColumns+" FROM candidates ORDER BY column_id, position, id")
	if err != nil {
		return nil, fmt.Errorf("failed to query candidates: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "error", err)
		}
	}()

	b := models.NewBoard()
	for rows.Next() {
		c, col, err := scanCandidate(rows)
		if err != nil {
			return nil, err
		}
		b[col] = append(b[col], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return b, nil
}

// GetByID returns one candidate and the column it sits in
func (r *CandidateRepo) GetByID(ctx context.Context, id string) (models.Candidate, models.ColumnID, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+candidateColumns+" FROM candidates WHERE id = ?", id)
	c, col, err := scanCandidate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Candidate{}, "", fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
	}
	return c, col, err
}

// Count returns the number of candidates
func (r *CandidateRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM candidates").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return n, nil
}

// Seed replaces the board with the contents of b. Candidates missing from
// b are deleted along with their history; the rest keep theirs.
func (r *CandidateRepo) Seed(ctx context.Context, b models.Board) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "CREATE TEMP TABLE IF NOT EXISTS seed_ids (id TEXT PRIMARY KEY)"); err != nil {
			return fmt.Errorf("failed to prepare seed: %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM seed_ids"); err != nil {
			return fmt.Errorf("failed to prepare seed: %w", err)
		}

		for _, col := range models.Columns {
			for pos, c := range b[col] {
				if err := c.Validate(); err != nil {
					return fmt.Errorf("candidate %s: %w", c.ID, err)
				}
				_, err := tx.ExecContext(ctx, `
					INSERT INTO candidates (id, name, role, score, avatar_url, email, applied_date, match_summary, column_id, position)
					VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
					ON CONFLICT(id) DO UPDATE SET
						name = excluded.name,
						role = excluded.role,
						score = excluded.score,
						avatar_url = excluded.avatar_url,
						email = excluded.email,
						applied_date = excluded.applied_date,
						match_summary = excluded.match_summary,
						column_id = excluded.column_id,
						position = excluded.position,
						updated_at = CURRENT_TIMESTAMP`,
					c.ID, c.Name, c.Role, c.Score, c.AvatarURL, c.Email, c.AppliedDate, c.MatchSummary, string(col), pos)
				if err != nil {
					return fmt.Errorf("failed to upsert candidate %s: %w", c.ID, err)
				}
				if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO seed_ids (id) VALUES (?)", c.ID); err != nil {
					return fmt.Errorf("failed to track seeded id: %w", err)
				}
			}
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM candidates WHERE id NOT IN (SELECT id FROM seed_ids)"); err != nil {
			return fmt.Errorf("failed to drop stale candidates: %w", err)
		}
		return nil
	})
}

// PersistMove places a candidate in the target column at req.NewIndex and
// renumbers both affected columns. The stored column, not the request's
// source, is treated as the origin.
func (r *CandidateRepo) PersistMove(ctx context.Context, req models.MoveRequest) error {
	if !req.TargetColumn.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, req.TargetColumn)
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		from, err := currentColumn(ctx, tx, req.CandidateID)
		if err != nil {
			return err
		}
		to := string(req.TargetColumn)

		target, err := columnIDs(ctx, tx, to)
		if err != nil {
			return err
		}
		target = insertAt(without(target, req.CandidateID), req.NewIndex, req.CandidateID)

		if from != to {
			source, err := columnIDs(ctx, tx, from)
			if err != nil {
				return err
			}
			if err := writeColumn(ctx, tx, from, without(source, req.CandidateID)); err != nil {
				return err
			}
		}
		if err := writeColumn(ctx, tx, to, target); err != nil {
			return err
		}

		position := min(max(req.NewIndex, 0), len(target)-1)
		return r.recordMove(ctx, tx, req.ID, req.CandidateID, from, to, position)
	})
}

// PersistBulkMove prepends the listed candidates to the target column in
// their current board order
func (r *CandidateRepo) PersistBulkMove(ctx context.Context, req models.BulkMoveRequest) error {
	if !req.TargetColumn.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidColumn, req.TargetColumn)
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		wanted := make(map[string]struct{}, len(req.CandidateIDs))
		for _, id := range req.CandidateIDs {
			wanted[id] = struct{}{}
		}

		type origin struct {
			id   string
			from string
		}
		var moved []origin
		remaining := make(map[string][]string, len(models.Columns))
		for _, col := range models.Columns {
			ids, err := columnIDs(ctx, tx, string(col))
			if err != nil {
				return err
			}
			for _, id := range ids {
				if _, ok := wanted[id]; ok {
					moved = append(moved, origin{id: id, from: string(col)})
					continue
				}
				remaining[string(col)] = append(remaining[string(col)], id)
			}
		}
		if len(moved) == 0 {
			return fmt.Errorf("%w: none of %v", ErrCandidateNotFound, req.CandidateIDs)
		}

		to := string(req.TargetColumn)
		head := make([]string, 0, len(moved)+len(remaining[to]))
		for _, m := range moved {
			head = append(head, m.id)
		}
		remaining[to] = append(head, remaining[to]...)

		for _, col := range models.Columns {
			if err := writeColumn(ctx, tx, string(col), remaining[string(col)]); err != nil {
				return err
			}
		}

		for i, m := range moved {
			if err := r.recordMove(ctx, tx, req.ID, m.id, m.from, to, i); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *CandidateRepo) recordMove(ctx context.Context, tx *sql.Tx, requestID, candidateID, from, to string, position int) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO candidate_moves (id, request_id, candidate_id, from_column, to_column, position, moved_by, moved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), requestID, candidateID, from, to, position, r.who(), r.now().UTC())
	if err != nil {
		return fmt.Errorf("failed to record move: %w", err)
	}
	return nil
}

func currentColumn(ctx context.Context, tx *sql.Tx, id string) (string, error) {
	var col string
	err := tx.QueryRowContext(ctx, "SELECT column_id FROM candidates WHERE id = ?", id).Scan(&col)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrCandidateNotFound, id)
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up candidate %s: %w", id, err)
	}
	return col, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCandidate(s scanner) (models.Candidate, models.ColumnID, error) {
	var (
		c   models.Candidate
		col string
	)
	if err := s.Scan(&c.ID, &c.Name, &c.Role, &c.Score, &c.AvatarURL, &c.Email, &c.AppliedDate, &c.MatchSummary, &col); err != nil {
		return models.Candidate{}, "", err
	}
	return c, models.ColumnID(col), nil
}

func defaultWho() string {
	return user.Recruiter()
}
