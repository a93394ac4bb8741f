// Package board holds the shared candidate board cache and the pure
// operations that rearrange it.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/hireboard/internal/models"
)

// QueryKey is the cache key the board lives under
const QueryKey = models.BoardQueryKey

// Mutator derives the next board from the previous one.
// It must not modify prev in place.
type Mutator func(prev models.Board) models.Board

// Fetcher loads the authoritative board from wherever candidates live
type Fetcher interface {
	FetchBoard(ctx context.Context) (models.Board, error)
}

// Reader is the read-only view of the board cache
type Reader interface {
	Get() models.Board
}

// Writer replaces the board through a mutator
type Writer interface {
	Set(fn Mutator)
}

// ReadWriter combines Reader and Writer
type ReadWriter interface {
	Reader
	Writer
}

// Cache is the full query-cache surface used by the persistence client
type Cache interface {
	ReadWriter
	CancelRefetch()
	Invalidate(ctx context.Context)
}

// Compile-time verification that *Store implements Cache
var _ Cache = (*Store)(nil)

// Store is the single owner of the board value. Readers always receive a
// copy and writers go through Set, so nobody observes a torn board.
type Store struct {
	fetcher Fetcher

	mu          sync.RWMutex
	board       models.Board
	initialized bool

	// refetch bookkeeping
	refetchMu     sync.Mutex
	refetchCancel context.CancelFunc
	generation    uint64
	inflight      sync.WaitGroup

	subMu       sync.Mutex
	subscribers map[int]chan struct{}
	nextSubID   int
}

// NewStore creates an empty store. fetcher may be nil when the board is
// seeded by hand (tests, scripted sessions).
func NewStore(fetcher Fetcher) *Store {
	return &Store{
		fetcher:     fetcher,
		board:       models.NewBoard(),
		subscribers: make(map[int]chan struct{}),
	}
}

// Key returns the cache key the store is registered under
func (s *Store) Key() string {
	return QueryKey
}

// Initialized reports whether the store has received a board yet
func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// Get returns a copy of the current board. An uninitialized store returns
// an empty board with all five columns.
func (s *Store) Get() models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.board.Clone()
}

// Set replaces the board with fn(prev). A nil result leaves the board
// untouched. The result is normalized to the five known columns.
func (s *Store) Set(fn Mutator) {
	s.mu.Lock()
	prev := s.board.Clone()
	next := fn(prev)
	if next == nil {
		s.mu.Unlock()
		return
	}
	s.board = next.Clone()
	s.initialized = true
	s.mu.Unlock()

	s.notify()
}

// Replace swaps in a whole board, used when restoring a snapshot
func (s *Store) Replace(b models.Board) {
	snapshot := b.Clone()
	s.Set(func(models.Board) models.Board { return snapshot })
}

// Load fetches the board synchronously and seeds the store with it
func (s *Store) Load(ctx context.Context) error {
	if s.fetcher == nil {
		return ErrNoFetcher
	}

	b, err := s.fetcher.FetchBoard(ctx)
	if err != nil {
		return fmt.Errorf("failed to load board: %w", err)
	}

	s.Replace(b)
	return nil
}

// Invalidate marks the board stale and refetches it in the background.
// A refetch already in flight is cancelled first.
func (s *Store) Invalidate(ctx context.Context) {
	if s.fetcher == nil {
		return
	}

	s.refetchMu.Lock()
	if s.refetchCancel != nil {
		s.refetchCancel()
	}
	s.generation++
	gen := s.generation
	refetchCtx, cancel := context.WithCancel(ctx)
	s.refetchCancel = cancel
	s.inflight.Add(1)
	s.refetchMu.Unlock()

	go func() {
		defer s.inflight.Done()
		defer cancel()

		b, err := s.fetcher.FetchBoard(refetchCtx)
		if err != nil {
			if refetchCtx.Err() == nil {
				slog.Warn("board refetch failed", "key", QueryKey, "error", err)
			}
			return
		}

		s.refetchMu.Lock()
		current := s.generation
		s.refetchMu.Unlock()
		if current != gen || refetchCtx.Err() != nil {
			slog.Debug("dropping stale board refetch", "key", QueryKey)
			return
		}

		s.Replace(b)
	}()
}

// CancelRefetch cancels any in-flight refetch so its result can no longer
// overwrite an optimistic update
func (s *Store) CancelRefetch() {
	s.refetchMu.Lock()
	defer s.refetchMu.Unlock()

	if s.refetchCancel != nil {
		s.refetchCancel()
		s.refetchCancel = nil
	}
	s.generation++
}

// Wait blocks until all in-flight refetches have finished
func (s *Store) Wait() {
	s.inflight.Wait()
}

// Subscribe returns a channel that receives a signal after every change.
// Signals coalesce: a slow reader sees at most one pending notification.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	ch := make(chan struct{}, 1)
	s.subscribers[id] = ch

	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if sub, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(sub)
		}
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for _, ch := range s.subscribers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
