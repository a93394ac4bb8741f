// Package dnd runs the drag session of the candidate board.
//
// A session goes Idle -> Dragging -> Idle. Drag-over applies cross-column
// moves to the board cache immediately, drag-end settles the final order
// and dispatches one move request carrying the pre-drag snapshot. The
// controller never waits on persistence.
package dnd

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/hireboard/internal/board"
	"github.com/thenoetrevino/hireboard/internal/collision"
	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// Mover dispatches a move request
type Mover interface {
	MoveCandidate(ctx context.Context, req models.MoveRequest) (<-chan candidate.MoveResult, error)
}

// ModeSource reports whether multi-select mode is on
type ModeSource interface {
	Enabled() bool
}

// DragStartEvent starts a session for ActiveID
type DragStartEvent struct {
	ActiveID string
}

// DragOverEvent reports the current target of the dragged card.
// ActiveRect is the dragged card's translated rectangle, nil when unknown.
// OverRect is the target's rectangle.
type DragOverEvent struct {
	ActiveID   string
	OverID     string
	ActiveRect *collision.Rect
	OverRect   collision.Rect
}

// DragEndEvent finishes the session over OverID. An empty OverID means
// the card was dropped outside every droppable.
type DragEndEvent struct {
	ActiveID string
	OverID   string
}

// State is the controller's phase
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller owns at most one drag session
type Controller struct {
	store     board.ReadWriter
	mover     Mover
	publisher events.TransitionPublisher
	mode      ModeSource

	mu           sync.Mutex
	state        State
	activeCard   *models.Candidate
	activeColumn models.ColumnID
	snapshot     models.Board
}

// NewController wires a controller. publisher and mode may be nil.
func NewController(store board.ReadWriter, mover Mover, publisher events.TransitionPublisher, mode ModeSource) *Controller {
	return &Controller{
		store:     store,
		mover:     mover,
		publisher: publisher,
		mode:      mode,
	}
}

func (c *Controller) selecting() bool {
	return c.mode != nil && c.mode.Enabled()
}

// State returns the current phase
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Active returns the dragged card while a session is open
func (c *Controller) Active() (models.Candidate, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeCard == nil {
		return models.Candidate{}, false
	}
	return *c.activeCard, true
}

// SourceColumn returns the column the session started in
func (c *Controller) SourceColumn() models.ColumnID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.activeColumn
}

// TrackedID is the card this controller is tracking, fed to the collision
// detector as Args.TrackedID
func (c *Controller) TrackedID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.activeCard == nil {
		return ""
	}
	return c.activeCard.ID
}

// DragStart records the active card and snapshots the board
func (c *Controller) DragStart(ev DragStartEvent) {
	if c.selecting() {
		return
	}

	current := c.store.Get()
	col, ok := board.FindColumn(current, ev.ActiveID)
	if !ok {
		slog.Debug("drag start on unknown id", "id", ev.ActiveID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = Dragging
	c.activeColumn = col
	c.activeCard = nil
	if idx := board.IndexOf(current[col], ev.ActiveID); idx != -1 {
		card := current[col][idx]
		c.activeCard = &card
	}
	c.snapshot = current
}

// DragOver moves the active card into the hovered column as soon as the
// target column changes. Reordering inside one column waits for DragEnd.
func (c *Controller) DragOver(ev DragOverEvent) {
	if c.selecting() {
		return
	}
	if ev.OverID == "" || ev.ActiveID == ev.OverID {
		return
	}

	c.store.Set(func(prev models.Board) models.Board {
		src, ok := board.FindColumn(prev, ev.ActiveID)
		if !ok {
			return nil
		}
		dst, ok := board.FindColumn(prev, ev.OverID)
		if !ok || src == dst {
			return nil
		}
		if board.IndexOf(prev[src], ev.ActiveID) == -1 {
			return nil
		}

		target := prev[dst]
		newIndex := len(target) + 1
		if !models.IsColumnID(ev.OverID) {
			if overIndex := board.IndexOf(target, ev.OverID); overIndex >= 0 {
				newIndex = overIndex
				if ev.ActiveRect != nil && ev.ActiveRect.Top > ev.OverRect.MidY() {
					newIndex++
				}
			}
		}

		return board.MoveCard(prev, ev.ActiveID, src, dst, newIndex)
	})
}

// DragEnd settles the drop, dispatches the move request and announces a
// column change. It returns the pending result, or nil when nothing was
// dispatched.
func (c *Controller) DragEnd(ctx context.Context, ev DragEndEvent) <-chan candidate.MoveResult {
	if c.selecting() {
		return nil
	}

	c.mu.Lock()
	activeColumn := c.activeColumn
	snapshot := c.snapshot
	c.mu.Unlock()
	defer c.reset()

	if ev.OverID == "" {
		return nil
	}

	current := c.store.Get()
	activeContainer, activeOK := board.FindColumn(current, ev.ActiveID)
	overContainer, overOK := board.FindColumn(current, ev.OverID)
	if !overOK {
		return nil
	}

	if activeOK && activeContainer == overContainer {
		c.store.Set(func(prev models.Board) models.Board {
			activeIndex := board.IndexOf(prev[activeContainer], ev.ActiveID)
			overIndex := board.IndexOf(prev[overContainer], ev.OverID)
			if activeIndex == -1 || activeIndex == overIndex {
				return nil
			}
			// a column target has no index; -1 moves the card to the end
			next := prev.Clone()
			next[activeContainer] = board.ArrayMove(prev[activeContainer], activeIndex, overIndex)
			return next
		})
	}

	if activeColumn == "" {
		return nil
	}

	latest := c.store.Get()
	finalIndex := board.IndexOf(latest[overContainer], ev.ActiveID)
	if finalIndex == -1 {
		slog.Debug("dragged card left its target column, skipping move",
			"candidate_id", ev.ActiveID,
			"column", overContainer)
		return nil
	}

	var result <-chan candidate.MoveResult
	if c.mover != nil {
		ch, err := c.mover.MoveCandidate(ctx, models.MoveRequest{
			CandidateID:  ev.ActiveID,
			SourceColumn: activeColumn,
			TargetColumn: overContainer,
			NewIndex:     finalIndex,
			Snapshot:     snapshot,
		})
		if err != nil {
			slog.Warn("move request rejected", "candidate_id", ev.ActiveID, "error", err)
			return nil
		}
		result = ch
	}

	if activeColumn != overContainer && c.publisher != nil {
		c.publisher.Publish(events.Transition{
			CandidateID: ev.ActiveID,
			Card:        latest[overContainer][finalIndex],
			Source:      activeColumn,
			Target:      overContainer,
		})
	}

	return result
}

// DragCancel abandons the session. Cross-column moves already applied by
// DragOver stay on the board.
func (c *Controller) DragCancel() {
	if c.selecting() {
		return
	}
	c.reset()
}

func (c *Controller) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Idle
	c.activeCard = nil
	c.activeColumn = ""
	c.snapshot = nil
}
