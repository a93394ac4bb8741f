package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/thenoetrevino/hireboard/internal/models"
)

// CandidateRepository is what the board and the move service need
type CandidateRepository interface {
	FetchBoard(ctx context.Context) (models.Board, error)
	PersistMove(ctx context.Context, req models.MoveRequest) error
	PersistBulkMove(ctx context.Context, req models.BulkMoveRequest) error
	Seed(ctx context.Context, b models.Board) error
	Count(ctx context.Context) (int, error)
}

// HistoryRepository reads recorded moves
type HistoryRepository interface {
	ForCandidate(ctx context.Context, candidateID string, limit int) ([]models.MoveRecord, error)
	Recent(ctx context.Context, limit int) ([]models.MoveRecord, error)
}

// DataStore is the unified interface for all data operations
type DataStore interface {
	CandidateRepository
	HistoryRepository
}

// Compile-time verification that *Repository implements DataStore
var _ DataStore = (*Repository)(nil)

// Repository composes the domain repositories using struct embedding
type Repository struct {
	*CandidateRepo
	*HistoryRepo
}

// Option configures a Repository
type Option func(*CandidateRepo)

// WithClock overrides the timestamp source for recorded moves
func WithClock(now func() time.Time) Option {
	return func(r *CandidateRepo) { r.now = now }
}

// WithActor overrides who recorded moves are attributed to
func WithActor(who func() string) Option {
	return func(r *CandidateRepo) { r.who = who }
}

// NewRepository creates a new Repository instance wrapping the given database connection
func NewRepository(db *sql.DB, opts ...Option) *Repository {
	cr := &CandidateRepo{db: db, now: time.Now, who: defaultWho}
	for _, opt := range opts {
		opt(cr)
	}
	return &Repository{
		CandidateRepo: cr,
		HistoryRepo:   &HistoryRepo{db: db},
	}
}
