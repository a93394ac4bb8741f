// Package selection tracks the multi-select mode of the board and the
// bulk actions that run on the selected candidates.
package selection

import (
	"context"
	"sync"

	"github.com/thenoetrevino/hireboard/internal/board"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// Mover is the slice of the candidate service bulk actions need
type Mover interface {
	BulkMove(ctx context.Context, req models.BulkMoveRequest) (<-chan candidate.MoveResult, error)
}

// Selection holds the selection-mode flag and the selected ids. While the
// mode is on, drag handlers are disabled.
type Selection struct {
	mu       sync.RWMutex
	enabled  bool
	selected map[string]struct{}
	order    []string

	store board.Reader
	mover Mover
}

// New creates a selection bound to a board reader and a bulk mover.
// Either may be nil when only the id bookkeeping is needed.
func New(store board.Reader, mover Mover) *Selection {
	return &Selection{
		selected: make(map[string]struct{}),
		store:    store,
		mover:    mover,
	}
}

// Enabled reports whether selection mode is on
func (s *Selection) Enabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.enabled
}

// SetEnabled turns selection mode on or off. Turning it off clears the
// selection.
func (s *Selection) SetEnabled(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = on
	if !on {
		s.clearLocked()
	}
}

// ToggleMode flips selection mode and returns the new state
func (s *Selection) ToggleMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = !s.enabled
	if !s.enabled {
		s.clearLocked()
	}
	return s.enabled
}

// Toggle adds or removes one id and reports whether it is now selected
func (s *Selection) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}

	s.selected[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// IsSelected reports whether id is in the selection
func (s *Selection) IsSelected(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.selected[id]
	return ok
}

// Clear empties the selection without leaving selection mode
func (s *Selection) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Selection) clearLocked() {
	s.selected = make(map[string]struct{})
	s.order = nil
}

// Count returns the number of selected ids
func (s *Selection) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// IDs returns the selected ids in the order they were picked
func (s *Selection) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// AllSelected is true iff something is selected and the count equals the
// number of visible candidates
func (s *Selection) AllSelected(total int) bool {
	n := s.Count()
	return n > 0 && n == total
}

// SelectAll selects every candidate on the board, or clears the selection
// when everything is already selected
func (s *Selection) SelectAll(b models.Board) {
	all := b.Flatten()
	if s.AllSelected(len(all)) {
		s.Clear()
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	for _, c := range all {
		s.selected[c.ID] = struct{}{}
		s.order = append(s.order, c.ID)
	}
}

// Selected flattens b in column order and keeps the selected candidates
func (s *Selection) Selected(b models.Board) []models.Candidate {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Candidate
	for _, c := range b.Flatten() {
		if _, ok := s.selected[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Current resolves the selection against the live board
func (s *Selection) Current() []models.Candidate {
	if s.store == nil {
		return nil
	}
	return s.Selected(s.store.Get())
}

// BulkMove moves the selected candidates to the head of target and clears
// the selection. The returned channel settles like a single move.
func (s *Selection) BulkMove(ctx context.Context, target models.ColumnID) (<-chan candidate.MoveResult, error) {
	ids := s.IDs()
	if len(ids) == 0 {
		return nil, candidate.ErrEmptySelection
	}
	if s.mover == nil {
		return nil, ErrNoMover
	}

	ch, err := s.mover.BulkMove(ctx, models.BulkMoveRequest{
		CandidateIDs: ids,
		TargetColumn: target,
	})
	if err != nil {
		return nil, err
	}

	s.Clear()
	return ch, nil
}
