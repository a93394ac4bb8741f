// Package mockapi is an in-process stand-in for a candidate API. It keeps
// its own copy of the board, answers after a fixed delay and can be told
// to fail a share of writes.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/thenoetrevino/hireboard/internal/board"
	"github.com/thenoetrevino/hireboard/internal/models"
)

// ErrInjectedFailure is returned when failure injection rejects a write
var ErrInjectedFailure = errors.New("simulated server error")

// Config tunes the simulated backend
type Config struct {
	FetchLatency time.Duration
	MoveLatency  time.Duration
	BulkLatency  time.Duration
	// FailureRate is the probability in [0, 1] that a write is rejected
	FailureRate float64
}

// Server holds the authoritative board of the simulated API
type Server struct {
	cfg Config

	mu    sync.Mutex
	board models.Board
	rng   *rand.Rand
	log   []models.MoveRecord
	now   func() time.Time
}

// New creates a server seeded with initial. A nil board uses SeedBoard.
func New(cfg Config, initial models.Board) *Server {
	if initial == nil {
		initial = SeedBoard()
	}
	return &Server{
		cfg:   cfg,
		board: initial.Clone(),
		rng:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15)),
		now:   time.Now,
	}
}

// SetFailureRate changes the share of rejected writes
func (s *Server) SetFailureRate(rate float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.FailureRate = min(max(rate, 0), 1)
}

// FetchBoard returns the server's board after the fetch latency
func (s *Server) FetchBoard(ctx context.Context) (models.Board, error) {
	if err := sleep(ctx, s.cfg.FetchLatency); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone(), nil
}

// PersistMove applies one move after the move latency
func (s *Server) PersistMove(ctx context.Context, req models.MoveRequest) error {
	if err := sleep(ctx, s.cfg.MoveLatency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shouldFail() {
		slog.Debug("simulated move failure", "candidate_id", req.CandidateID)
		return ErrInjectedFailure
	}

	from, _, ok := s.board.Find(req.CandidateID)
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrCandidateNotFound, req.CandidateID)
	}
	if !req.TargetColumn.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownColumn, req.TargetColumn)
	}

	s.board = board.MoveCard(s.board, req.CandidateID, from, req.TargetColumn, req.NewIndex)
	s.record(req.ID, req.CandidateID, from, req.TargetColumn)
	return nil
}

// PersistBulkMove applies a bulk move after the bulk latency
func (s *Server) PersistBulkMove(ctx context.Context, req models.BulkMoveRequest) error {
	if err := sleep(ctx, s.cfg.BulkLatency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.shouldFail() {
		slog.Debug("simulated bulk move failure", "count", len(req.CandidateIDs))
		return ErrInjectedFailure
	}
	if !req.TargetColumn.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownColumn, req.TargetColumn)
	}

	for _, id := range req.CandidateIDs {
		if from, _, ok := s.board.Find(id); ok {
			s.record(req.ID, id, from, req.TargetColumn)
		}
	}
	s.board = board.BulkMove(s.board, req.CandidateIDs, req.TargetColumn)
	return nil
}

// History returns the moves the server accepted, oldest first
func (s *Server) History() []models.MoveRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MoveRecord, len(s.log))
	copy(out, s.log)
	return out
}

// Board returns the server's current board without latency
func (s *Server) Board() models.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

func (s *Server) record(requestID, candidateID string, from, to models.ColumnID) {
	_, pos, _ := s.board.Find(candidateID)
	s.log = append(s.log, models.MoveRecord{
		ID:          requestID,
		CandidateID: candidateID,
		FromColumn:  from,
		ToColumn:    to,
		Position:    pos,
		MovedBy:     "simulated",
		MovedAt:     s.now(),
	})
}

func (s *Server) shouldFail() bool {
	return s.cfg.FailureRate > 0 && s.rng.Float64() < s.cfg.FailureRate
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
