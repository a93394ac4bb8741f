package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hireboard/internal/collision"
	"github.com/thenoetrevino/hireboard/internal/dnd"
	"github.com/thenoetrevino/hireboard/internal/models"
)

// startDrag grabs the card under the cursor
func (m Model) startDrag() (tea.Model, tea.Cmd) {
	card, ok := m.current()
	if !ok {
		return m, nil
	}
	m.app.Controller.DragStart(dnd.DragStartEvent{ActiveID: card.ID})
	if m.dragging() {
		m.dragOver = card.ID
	}
	return m, nil
}

func (m Model) handleDragKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.PrevColumn):
		m.dragAcross(-1)
	case key.Matches(msg, keys.NextColumn):
		m.dragAcross(1)
	case key.Matches(msg, keys.PrevCard):
		m.dragWithin(-1)
	case key.Matches(msg, keys.NextCard):
		m.dragWithin(1)
	case key.Matches(msg, keys.Grab), key.Matches(msg, keys.Confirm):
		return m.drop()
	case key.Matches(msg, keys.CancelDrag):
		id := m.app.Controller.TrackedID()
		m.app.Controller.DragCancel()
		m.dragOver = ""
		m.focusCard(id)
	case key.Matches(msg, keys.Quit):
		m.app.Controller.DragCancel()
		return m, tea.Quit
	}
	return m, nil
}

// dragAcross carries the grabbed card into the neighbouring column. The
// card's would-be rectangle in that column is run through the collision
// detector and the winner is reported to the controller as a drag-over.
func (m *Model) dragAcross(step int) {
	active := m.app.Controller.TrackedID()
	target := m.col + step
	if active == "" || target < 0 || target >= len(models.Columns) {
		return
	}

	b := m.visible()
	l := m.layout()
	row := min(m.row, len(b[models.Columns[target]]))
	rect := l.slot(target, row)

	over, ok := m.detector.Over(collision.Args{
		ActiveID:      active,
		TrackedID:     active,
		CollisionRect: rect,
		Droppables:    l.droppables(b, active),
	})
	if !ok {
		return
	}
	overRect, _ := l.rectOf(b, over)

	m.app.Controller.DragOver(dnd.DragOverEvent{
		ActiveID:   active,
		OverID:     over,
		ActiveRect: &rect,
		OverRect:   overRect,
	})

	// the card now sits in its new column; dropping it there keeps it put
	m.dragOver = active
	m.focusCard(active)
}

// dragWithin picks a new position in the card's current column. The
// reorder itself is applied on drop.
func (m *Model) dragWithin(step int) {
	active := m.app.Controller.TrackedID()
	if active == "" {
		return
	}
	cards := m.visible()[models.Columns[m.col]]
	row := m.row + step
	if row < 0 || row >= len(cards) {
		return
	}
	m.row = row
	m.dragOver = cards[row].ID
	m.scrollToCursor()
}

// drop ends the drag over the current target and waits for persistence
// in the background
func (m Model) drop() (tea.Model, tea.Cmd) {
	active := m.app.Controller.TrackedID()
	over := m.dragOver
	m.dragOver = ""

	ch := m.app.Controller.DragEnd(m.ctx, dnd.DragEndEvent{ActiveID: active, OverID: over})
	m.focusCard(active)

	if _, ok := m.app.Drafter.Current(); ok {
		m.mode = modeDrawer
	}
	return m, awaitMove(ch, false)
}
