package dnd

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hireboard/internal/board"
	"github.com/thenoetrevino/hireboard/internal/collision"
	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/notify"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

type stubBackend struct {
	mu    sync.Mutex
	err   error
	moves []models.MoveRequest
}

func (b *stubBackend) PersistMove(_ context.Context, req models.MoveRequest) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.moves = append(b.moves, req)
	return b.err
}

func (b *stubBackend) PersistBulkMove(context.Context, models.BulkMoveRequest) error { return nil }

type flag bool

func (f *flag) Enabled() bool { return bool(*f) }

type harness struct {
	store       *board.Store
	backend     *stubBackend
	ctrl        *Controller
	transitions []events.Transition
	mode        *flag
}

func newHarness(t *testing.T, initial models.Board) *harness {
	t.Helper()
	h := &harness{
		store:   board.NewStore(nil),
		backend: &stubBackend{},
		mode:    new(flag),
	}
	h.store.Replace(initial)

	bus := events.NewBus()
	bus.Subscribe(func(tr events.Transition) { h.transitions = append(h.transitions, tr) })

	svc := candidate.NewService(h.store, h.backend, candidate.WithNotifier(notify.NewState()))
	h.ctrl = NewController(h.store, svc, bus, h.mode)
	return h
}

func card(id string) models.Candidate {
	return models.Candidate{ID: id, Name: "Candidate " + id, Role: "Engineer", Score: 75}
}

func boardOf(cols map[models.ColumnID][]string) models.Board {
	b := models.NewBoard()
	for col, ids := range cols {
		for _, id := range ids {
			b[col] = append(b[col], card(id))
		}
	}
	return b
}

func settle(t *testing.T, ch <-chan candidate.MoveResult) candidate.MoveResult {
	t.Helper()
	require.NotNil(t, ch, "expected a dispatched move")
	select {
	case res := <-ch:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("move never settled")
		return nil
	}
}

func rect(top float64) *collision.Rect {
	return &collision.Rect{Left: 0, Top: top, Width: 90, Height: 40}
}

// ============================================================================
// TESTS
// ============================================================================

func TestDrag_OntoEmptyColumn(t *testing.T) {
	h := newHarness(t, boardOf(map[models.ColumnID][]string{models.ColumnNew: {"A", "B"}}))
	ctx := context.Background()

	h.ctrl.DragStart(DragStartEvent{ActiveID: "A"})
	assert.Equal(t, Dragging, h.ctrl.State())
	assert.Equal(t, "A", h.ctrl.TrackedID())

	h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: "screening"})
	mid := h.store.Get()
	assert.Equal(t, []string{"B"}, mid.IDs(models.ColumnNew))
	assert.Equal(t, []string{"A"}, mid.IDs(models.ColumnScreening))

	res := settle(t, h.ctrl.DragEnd(ctx, DragEndEvent{ActiveID: "A", OverID: "screening"}))
	_, ok := res.(candidate.Committed)
	assert.True(t, ok)
	assert.Equal(t, Idle, h.ctrl.State())

	got := h.store.Get()
	assert.Equal(t, []string{"B"}, got.IDs(models.ColumnNew))
	assert.Equal(t, []string{"A"}, got.IDs(models.ColumnScreening))
	for _, col := range []models.ColumnID{models.ColumnInterview, models.ColumnOffer, models.ColumnRejected} {
		assert.Empty(t, got.IDs(col))
	}

	require.Len(t, h.backend.moves, 1)
	req := h.backend.moves[0]
	assert.Equal(t, "A", req.CandidateID)
	assert.Equal(t, models.ColumnNew, req.SourceColumn)
	assert.Equal(t, models.ColumnScreening, req.TargetColumn)
	assert.Equal(t, 0, req.NewIndex)

	require.Len(t, h.transitions, 1)
	assert.Equal(t, events.Transition{
		CandidateID: "A",
		Card:        card("A"),
		Source:      models.ColumnNew,
		Target:      models.ColumnScreening,
	}, h.transitions[0])
}

func TestDrag_ReorderWithinColumn(t *testing.T) {
	h := newHarness(t, boardOf(map[models.ColumnID][]string{models.ColumnNew: {"A", "B", "C"}}))

	h.ctrl.DragStart(DragStartEvent{ActiveID: "C"})
	// pointer above B's midpoint: same column, nothing moves yet
	h.ctrl.DragOver(DragOverEvent{ActiveID: "C", OverID: "B", ActiveRect: rect(45), OverRect: *rect(50)})
	assert.Equal(t, []string{"A", "B", "C"}, h.store.Get().IDs(models.ColumnNew))

	res := settle(t, h.ctrl.DragEnd(context.Background(), DragEndEvent{ActiveID: "C", OverID: "B"}))
	_, ok := res.(candidate.Committed)
	assert.True(t, ok)

	assert.Equal(t, []string{"A", "C", "B"}, h.store.Get().IDs(models.ColumnNew))
	require.Len(t, h.backend.moves, 1)
	assert.Equal(t, 1, h.backend.moves[0].NewIndex)
	assert.Empty(t, h.transitions, "no transition inside one column")
}

func TestDrag_DropOnOwnColumnMovesToEnd(t *testing.T) {
	h := newHarness(t, boardOf(map[models.ColumnID][]string{models.ColumnNew: {"A", "B", "C"}}))

	h.ctrl.DragStart(DragStartEvent{ActiveID: "A"})
	settle(t, h.ctrl.DragEnd(context.Background(), DragEndEvent{ActiveID: "A", OverID: "new"}))

	assert.Equal(t, []string{"B", "C", "A"}, h.store.Get().IDs(models.ColumnNew))
}

func TestDragOver_MidpointRule(t *testing.T) {
	initial := boardOf(map[models.ColumnID][]string{
		models.ColumnNew:       {"A"},
		models.ColumnInterview: {"X", "Y"},
	})
	xRect := collision.Rect{Top: 100, Height: 40} // midpoint 120

	tests := []struct {
		name   string
		active *collision.Rect
		want   []string
	}{
		{"above midpoint goes before", rect(110), []string{"A", "X", "Y"}},
		{"below midpoint goes after", rect(121), []string{"X", "A", "Y"}},
		{"unknown geometry goes before", nil, []string{"A", "X", "Y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, initial)
			h.ctrl.DragStart(DragStartEvent{ActiveID: "A"})
			h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: "X", ActiveRect: tt.active, OverRect: xRect})
			assert.Equal(t, tt.want, h.store.Get().IDs(models.ColumnInterview))
		})
	}
}

func TestDragOver_Noops(t *testing.T) {
	initial := boardOf(map[models.ColumnID][]string{models.ColumnNew: {"A", "B"}})
	h := newHarness(t, initial)
	h.ctrl.DragStart(DragStartEvent{ActiveID: "A"})

	h.ctrl.DragOver(DragOverEvent{ActiveID: "A"})
	h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: "A"})
	h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: "nowhere"})
	h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: "B"})
	h.ctrl.DragOver(DragOverEvent{ActiveID: "ghost", OverID: "offer"})

	assert.True(t, h.store.Get().Equal(initial))
}

func TestDragCancel_KeepsDragOverMutations(t *testing.T) {
	h := newHarness(t, boardOf(map[models.ColumnID][]string{
		models.ColumnNew:   {"A", "B"},
		models.ColumnOffer: {"O"},
	}))

	h.ctrl.DragStart(DragStartEvent{ActiveID: "A"})
	h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: "screening"})
	h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: "offer"})
	lastApplied := h.store.Get()

	h.ctrl.DragCancel()

	assert.Equal(t, Idle, h.ctrl.State())
	assert.True(t, h.store.Get().Equal(lastApplied))
	assert.Equal(t, []string{"O", "A"}, h.store.Get().IDs(models.ColumnOffer))
	assert.Empty(t, h.backend.moves)
	assert.Empty(t, h.transitions)
}

func TestDragEnd_NoTargetResets(t *testing.T) {
	initial := boardOf(map[models.ColumnID][]string{models.ColumnNew: {"A", "B"}})
	h := newHarness(t, initial)

	h.ctrl.DragStart(DragStartEvent{ActiveID: "A"})
	ch := h.ctrl.DragEnd(context.Background(), DragEndEvent{ActiveID: "A"})

	assert.Nil(t, ch)
	assert.Equal(t, Idle, h.ctrl.State())
	_, ok := h.ctrl.Active()
	assert.False(t, ok)
	assert.True(t, h.store.Get().Equal(initial))
}

func TestDrag_FailedMoveRestoresPreDragOrder(t *testing.T) {
	initial := boardOf(map[models.ColumnID][]string{
		models.ColumnNew:       {"A", "B", "C"},
		models.ColumnScreening: {"S1", "S2"},
	})
	h := newHarness(t, initial)
	h.backend.err = errors.New("server said no")

	h.ctrl.DragStart(DragStartEvent{ActiveID: "B"})
	h.ctrl.DragOver(DragOverEvent{ActiveID: "B", OverID: "S2", ActiveRect: rect(0), OverRect: *rect(50)})
	assert.Equal(t, []string{"S1", "B", "S2"}, h.store.Get().IDs(models.ColumnScreening))

	res := settle(t, h.ctrl.DragEnd(context.Background(), DragEndEvent{ActiveID: "B", OverID: "S2"}))

	rb, ok := res.(candidate.RolledBack)
	require.True(t, ok)
	assert.True(t, rb.Snapshot.Equal(initial))
	got := h.store.Get()
	assert.True(t, got.Equal(initial))
	assert.Equal(t, []string{"A", "B", "C"}, got.IDs(models.ColumnNew))
	assert.Len(t, h.transitions, 1, "the transition fires on dispatch, not on success")
}

func TestDrag_SelectionModeDisablesDragging(t *testing.T) {
	initial := boardOf(map[models.ColumnID][]string{models.ColumnNew: {"A"}})
	h := newHarness(t, initial)
	*h.mode = true

	h.ctrl.DragStart(DragStartEvent{ActiveID: "A"})
	h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: "offer"})
	ch := h.ctrl.DragEnd(context.Background(), DragEndEvent{ActiveID: "A", OverID: "offer"})

	assert.Nil(t, ch)
	assert.Equal(t, Idle, h.ctrl.State())
	assert.True(t, h.store.Get().Equal(initial))
	assert.Empty(t, h.backend.moves)
}

func TestDragEnd_SkipsWhenCardVanished(t *testing.T) {
	h := newHarness(t, boardOf(map[models.ColumnID][]string{
		models.ColumnNew:   {"A"},
		models.ColumnOffer: {"O"},
	}))

	h.ctrl.DragStart(DragStartEvent{ActiveID: "A"})
	h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: "offer"})
	// another session removed the card
	h.store.Set(func(prev models.Board) models.Board { return board.RemoveCard(prev, "A") })

	ch := h.ctrl.DragEnd(context.Background(), DragEndEvent{ActiveID: "A", OverID: "offer"})

	assert.Nil(t, ch)
	assert.Empty(t, h.backend.moves)
	assert.Empty(t, h.transitions)
	assert.Equal(t, Idle, h.ctrl.State())
}

func TestDrag_TransitionPublishedOncePerDrop(t *testing.T) {
	h := newHarness(t, boardOf(map[models.ColumnID][]string{
		models.ColumnNew: {"A", "B"},
	}))
	ctx := context.Background()

	h.ctrl.DragStart(DragStartEvent{ActiveID: "A"})
	for _, over := range []string{"screening", "interview", "offer", "rejected"} {
		h.ctrl.DragOver(DragOverEvent{ActiveID: "A", OverID: over})
	}
	settle(t, h.ctrl.DragEnd(ctx, DragEndEvent{ActiveID: "A", OverID: "rejected"}))

	require.Len(t, h.transitions, 1)
	assert.Equal(t, models.ColumnNew, h.transitions[0].Source)
	assert.Equal(t, models.ColumnRejected, h.transitions[0].Target)

	// a drop back into the same column it started in is not a transition
	h.ctrl.DragStart(DragStartEvent{ActiveID: "B"})
	settle(t, h.ctrl.DragEnd(ctx, DragEndEvent{ActiveID: "B", OverID: "new"}))
	assert.Len(t, h.transitions, 1)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "dragging", Dragging.String())
}
