package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// MoveOutcome describes a settled single-candidate move
type MoveOutcome struct {
	Candidate models.Candidate `json:"candidate"`
	From      models.ColumnID  `json:"from"`
	To        models.ColumnID  `json:"to"`
	Position  int              `json:"position"`
	RequestID string           `json:"request_id"`
}

// GetID lets quiet mode print the candidate id
func (m MoveOutcome) GetID() string { return m.Candidate.ID }

// Board loads the board when the store has not been fetched yet
func (c *CLI) Board(ctx context.Context) (models.Board, error) {
	if !c.App.Store.Initialized() {
		if err := c.App.Load(ctx); err != nil {
			return nil, fmt.Errorf("failed to load board: %w", err)
		}
	}
	return c.App.Store.Get(), nil
}

// Move persists one candidate move and waits for it to settle. A negative
// position appends to the end of the target column.
func (c *CLI) Move(ctx context.Context, candidateID string, target models.ColumnID, position int) (MoveOutcome, error) {
	b, err := c.Board(ctx)
	if err != nil {
		return MoveOutcome{}, err
	}

	source, _, ok := b.Find(candidateID)
	if !ok {
		return MoveOutcome{}, fmt.Errorf("%w: %s", models.ErrCandidateNotFound, candidateID)
	}
	card, _ := b.Candidate(candidateID)

	if position < 0 {
		position = len(b[target])
		if source == target {
			position--
		}
	}

	ch, err := c.App.CandidateService.MoveCandidate(ctx, models.MoveRequest{
		CandidateID:  candidateID,
		SourceColumn: source,
		TargetColumn: target,
		NewIndex:     position,
	})
	if err != nil {
		return MoveOutcome{}, err
	}

	res := candidate.Await(ch)
	if err := candidate.AsError(res); err != nil {
		return MoveOutcome{}, err
	}
	committed, _ := res.(candidate.Committed)

	if source != target {
		c.App.Bus.Publish(events.Transition{
			CandidateID: candidateID,
			Card:        card,
			Source:      source,
			Target:      target,
		})
	}

	return MoveOutcome{
		Candidate: card,
		From:      source,
		To:        target,
		Position:  position,
		RequestID: committed.RequestID,
	}, nil
}

// BulkMove moves every listed candidate to the head of target and waits
// for the backend. It returns the candidates that moved, in board order.
func (c *CLI) BulkMove(ctx context.Context, ids []string, target models.ColumnID) ([]models.Candidate, error) {
	b, err := c.Board(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, _, ok := b.Find(id); !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrCandidateNotFound, id)
		}
	}

	sel := c.App.Selection
	sel.Clear()
	for _, id := range ids {
		if !sel.IsSelected(id) {
			sel.Toggle(id)
		}
	}
	moved := sel.Selected(b)

	ch, err := sel.BulkMove(ctx, target)
	if err != nil {
		return nil, err
	}
	if err := candidate.AsError(candidate.Await(ch)); err != nil {
		return nil, err
	}
	return moved, nil
}

// Lookup resolves ids against the board, keeping the requested order
func (c *CLI) Lookup(ctx context.Context, ids []string) ([]models.Candidate, error) {
	b, err := c.Board(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Candidate, 0, len(ids))
	for _, id := range ids {
		card, ok := b.Candidate(id)
		if !ok {
			return nil, fmt.Errorf("%w: %s", models.ErrCandidateNotFound, id)
		}
		out = append(out, card)
	}
	return out, nil
}
