// Package candidate persists board moves. Every move is applied to the
// board cache first and persisted in the background; a failed or timed
// out request restores the captured board in full.
package candidate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/hireboard/internal/board"
	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/notify"
)

// DefaultMoveTimeout bounds a single backend call
const DefaultMoveTimeout = 5 * time.Second

// Backend persists moves wherever candidates live. Any returned error is
// treated as a rejection and triggers a rollback.
type Backend interface {
	PersistMove(ctx context.Context, req models.MoveRequest) error
	PersistBulkMove(ctx context.Context, req models.BulkMoveRequest) error
}

// Service defines the candidate move operations
type Service interface {
	// MoveCandidate applies req to the board cache and persists it. The
	// returned channel yields exactly one MoveResult and is then closed.
	MoveCandidate(ctx context.Context, req models.MoveRequest) (<-chan MoveResult, error)

	// BulkMove moves every listed candidate to the front of target in a
	// single cache update and persists it the same way.
	BulkMove(ctx context.Context, req models.BulkMoveRequest) (<-chan MoveResult, error)
}

// Option configures the service
type Option func(*service)

// WithTimeout bounds each backend call. Zero or negative keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(s *service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithNotifier sets where rollback messages go
func WithNotifier(n notify.Notifier) Option {
	return func(s *service) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithEventPublisher tells other sessions to refetch after a commit
func WithEventPublisher(p events.EventPublisher) Option {
	return func(s *service) {
		s.eventClient = p
	}
}

// service implements Service interface
type service struct {
	store       board.Cache
	backend     Backend
	eventClient events.EventPublisher
	notifier    notify.Notifier
	timeout     time.Duration
}

// NewService creates a new candidate move service
func NewService(store board.Cache, backend Backend, opts ...Option) Service {
	s := &service{
		store:    store,
		backend:  backend,
		notifier: notify.Log{},
		timeout:  DefaultMoveTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// MoveCandidate runs the mutate phase synchronously: any pending refetch is
// cancelled and the rollback board captured. When req carries no snapshot
// the move has not been staged yet and is applied here.
func (s *service) MoveCandidate(ctx context.Context, req models.MoveRequest) (<-chan MoveResult, error) {
	if req.CandidateID == "" {
		return nil, ErrInvalidCandidateID
	}
	if !req.SourceColumn.Valid() || !req.TargetColumn.Valid() {
		return nil, ErrInvalidColumn
	}
	if req.NewIndex < 0 {
		return nil, ErrInvalidPosition
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	s.store.CancelRefetch()

	var previous models.Board
	if req.Snapshot != nil {
		previous = req.Snapshot.Clone()
	} else {
		previous = s.store.Get()
		if _, ok := board.FindColumn(previous, req.CandidateID); !ok {
			return nil, fmt.Errorf("%w: %s", ErrCandidateNotFound, req.CandidateID)
		}
		s.store.Set(func(prev models.Board) models.Board {
			return board.MoveCard(prev, req.CandidateID, req.SourceColumn, req.TargetColumn, req.NewIndex)
		})
	}

	slog.Debug("persisting candidate move",
		"request_id", req.ID,
		"candidate_id", req.CandidateID,
		"from", req.SourceColumn,
		"to", req.TargetColumn,
		"index", req.NewIndex)

	out := make(chan MoveResult, 1)
	ids := []string{req.CandidateID}
	go s.settle(ctx, out, req.ID, ids, req.TargetColumn, previous, MoveFailedMessage, func(callCtx context.Context) error {
		persisted := req
		persisted.Snapshot = nil
		return s.backend.PersistMove(callCtx, persisted)
	})
	return out, nil
}

// BulkMove removes the selected candidates from their columns and prepends
// them to the target in board order
func (s *service) BulkMove(ctx context.Context, req models.BulkMoveRequest) (<-chan MoveResult, error) {
	if len(req.CandidateIDs) == 0 {
		return nil, ErrEmptySelection
	}
	if !req.TargetColumn.Valid() {
		return nil, ErrInvalidColumn
	}
	if req.ID == "" {
		req.ID = uuid.New().String()
	}

	s.store.CancelRefetch()
	previous := s.store.Get()

	// keep only candidates that are actually on the board, in board order
	wanted := make(map[string]struct{}, len(req.CandidateIDs))
	for _, id := range req.CandidateIDs {
		wanted[id] = struct{}{}
	}
	var present []string
	for _, c := range previous.Flatten() {
		if _, ok := wanted[c.ID]; ok {
			present = append(present, c.ID)
		}
	}
	if len(present) == 0 {
		return nil, ErrCandidateNotFound
	}
	req.CandidateIDs = present

	s.store.Set(func(prev models.Board) models.Board {
		return board.BulkMove(prev, present, req.TargetColumn)
	})

	slog.Debug("persisting bulk move",
		"request_id", req.ID,
		"count", len(present),
		"to", req.TargetColumn)

	out := make(chan MoveResult, 1)
	go s.settle(ctx, out, req.ID, present, req.TargetColumn, previous, BulkMoveFailedMessage, func(callCtx context.Context) error {
		return s.backend.PersistBulkMove(callCtx, req)
	})
	return out, nil
}

// settle runs the backend call and finishes the request: refetch on
// success, full restore plus notification on failure.
func (s *service) settle(
	ctx context.Context,
	out chan<- MoveResult,
	requestID string,
	ids []string,
	target models.ColumnID,
	previous models.Board,
	failureMessage string,
	call func(context.Context) error,
) {
	defer close(out)

	err := s.callBackend(ctx, call)
	if err == nil {
		s.store.Invalidate(context.WithoutCancel(ctx))
		s.publishBoardChanged(ids)
		out <- Committed{RequestID: requestID, CandidateIDs: ids, Target: target}
		return
	}

	slog.Warn("move rejected, restoring board",
		"request_id", requestID,
		"candidates", ids,
		"error", err)

	restore := previous.Clone()
	s.store.Set(func(models.Board) models.Board { return restore })
	s.notifier.Notify(notify.LevelError, failureMessage)
	s.store.Invalidate(context.WithoutCancel(ctx))

	out <- RolledBack{RequestID: requestID, CandidateIDs: ids, Snapshot: previous, Err: err}
}

// callBackend runs call with the move timeout. A backend that ignores its
// context still loses the race against the deadline.
func (s *service) callBackend(ctx context.Context, call func(context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("backend panicked", "panic", r)
				done <- fmt.Errorf("%w: %v", ErrBackendPanic, r)
			}
		}()
		done <- call(callCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-callCtx.Done():
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w after %s", ErrMoveTimeout, s.timeout)
	}
}

func (s *service) publishBoardChanged(ids []string) {
	if s.eventClient == nil {
		return
	}

	candidateID := ""
	if len(ids) == 1 {
		candidateID = ids[0]
	}
	_ = events.PublishWithRetry(s.eventClient, events.BoardChanged(board.QueryKey, candidateID), 3)
}
