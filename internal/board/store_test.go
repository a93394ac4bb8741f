package board

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hireboard/internal/models"
)

// fakeFetcher returns queued boards; a non-nil gate blocks until released
type fakeFetcher struct {
	mu     sync.Mutex
	boards []models.Board
	err    error
	gate   chan struct{}
	calls  int
}

func (f *fakeFetcher) FetchBoard(ctx context.Context) (models.Board, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gate
	var b models.Board
	if len(f.boards) > 0 {
		b = f.boards[0]
		f.boards = f.boards[1:]
	}
	err := f.err
	f.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return b, err
}

func TestStore_GetUninitialized(t *testing.T) {
	s := NewStore(nil)

	b := s.Get()
	assert.False(t, s.Initialized())
	assert.Len(t, b, len(models.Columns))
	assert.Equal(t, 0, b.Count())
	assert.Equal(t, "candidates", s.Key())
}

func TestStore_SetDoesNotLeakPrevious(t *testing.T) {
	s := NewStore(nil)
	s.Replace(boardOf(map[models.ColumnID][]string{models.ColumnNew: {"a", "b"}}))

	var seen models.Board
	s.Set(func(prev models.Board) models.Board {
		seen = prev
		return MoveCard(prev, "a", models.ColumnNew, models.ColumnOffer, 0)
	})

	// mutating what the mutator saw must not reach the store
	seen[models.ColumnNew] = nil
	got := s.Get()
	assert.Equal(t, []string{"b"}, got.IDs(models.ColumnNew))
	assert.Equal(t, []string{"a"}, got.IDs(models.ColumnOffer))

	// neither may mutating a value returned by Get
	got[models.ColumnOffer][0].Name = "tampered"
	assert.NotEqual(t, "tampered", s.Get()[models.ColumnOffer][0].Name)
}

func TestStore_SetNilKeepsBoard(t *testing.T) {
	s := NewStore(nil)
	s.Replace(boardOf(map[models.ColumnID][]string{models.ColumnNew: {"a"}}))

	s.Set(func(models.Board) models.Board { return nil })

	assert.Equal(t, []string{"a"}, s.Get().IDs(models.ColumnNew))
}

func TestStore_SetNormalizesColumns(t *testing.T) {
	s := NewStore(nil)

	s.Set(func(models.Board) models.Board {
		return models.Board{models.ColumnOffer: {card("a")}, models.ColumnID("bogus"): {card("z")}}
	})

	b := s.Get()
	assert.Len(t, b, len(models.Columns))
	assert.NotContains(t, b, models.ColumnID("bogus"))
	assert.NotNil(t, b[models.ColumnNew])
}

func TestStore_Load(t *testing.T) {
	f := &fakeFetcher{boards: []models.Board{boardOf(map[models.ColumnID][]string{models.ColumnNew: {"a"}})}}
	s := NewStore(f)

	require.NoError(t, s.Load(context.Background()))
	assert.True(t, s.Initialized())
	assert.Equal(t, []string{"a"}, s.Get().IDs(models.ColumnNew))
}

func TestStore_LoadErrors(t *testing.T) {
	assert.ErrorIs(t, NewStore(nil).Load(context.Background()), ErrNoFetcher)

	boom := errors.New("boom")
	s := NewStore(&fakeFetcher{err: boom})
	assert.ErrorIs(t, s.Load(context.Background()), boom)
}

func TestStore_InvalidateRefetches(t *testing.T) {
	fresh := boardOf(map[models.ColumnID][]string{models.ColumnOffer: {"z"}})
	s := NewStore(&fakeFetcher{boards: []models.Board{fresh}})

	s.Invalidate(context.Background())
	s.Wait()

	assert.Equal(t, []string{"z"}, s.Get().IDs(models.ColumnOffer))
}

func TestStore_CancelRefetchDropsResult(t *testing.T) {
	gate := make(chan struct{})
	f := &fakeFetcher{
		boards: []models.Board{boardOf(map[models.ColumnID][]string{models.ColumnOffer: {"stale"}})},
		gate:   gate,
	}
	s := NewStore(f)
	s.Replace(boardOf(map[models.ColumnID][]string{models.ColumnNew: {"a"}}))

	s.Invalidate(context.Background())
	s.CancelRefetch()
	close(gate)
	s.Wait()

	assert.Equal(t, []string{"a"}, s.Get().IDs(models.ColumnNew))
	assert.Empty(t, s.Get().IDs(models.ColumnOffer))
}

func TestStore_SubscribeNotifies(t *testing.T) {
	s := NewStore(nil)
	ch, unsubscribe := s.Subscribe()
	defer unsubscribe()

	s.Replace(boardOf(map[models.ColumnID][]string{models.ColumnNew: {"a"}}))
	s.Replace(boardOf(map[models.ColumnID][]string{models.ColumnNew: {"b"}}))

	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("expected a change notification")
	}
}

func TestStore_UnsubscribeClosesChannel(t *testing.T) {
	s := NewStore(nil)
	ch, unsubscribe := s.Subscribe()
	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)
}

func TestStore_ConcurrentReadersSeeWholeBoards(t *testing.T) {
	s := NewStore(nil)
	s.Replace(boardOf(map[models.ColumnID][]string{models.ColumnNew: {"a", "b", "c"}}))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				assert.Equal(t, 3, s.Get().Count())
			}
		}()
	}
	for j := 0; j < 200; j++ {
		src, dst := models.ColumnNew, models.ColumnOffer
		if j%2 == 1 {
			src, dst = dst, src
		}
		s.Set(func(prev models.Board) models.Board {
			return MoveCard(prev, "a", src, dst, 0)
		})
	}
	wg.Wait()
}
