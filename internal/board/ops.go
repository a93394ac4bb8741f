package board

import (
	"slices"

	"github.com/thenoetrevino/hireboard/internal/models"
)

// ============================================================================
// Pure board operations. Every function returns new slices/maps and leaves
// its inputs untouched.
// ============================================================================

// FindColumn resolves the container of a droppable id: a column id is its
// own container, a card id resolves to the column holding it.
func FindColumn(b models.Board, id string) (models.ColumnID, bool) {
	if models.IsColumnID(id) {
		return models.ColumnID(id), true
	}
	col, _, ok := b.Find(id)
	return col, ok
}

// IndexOf returns the position of a card within a column, or -1
func IndexOf(cards []models.Candidate, id string) int {
	return slices.IndexFunc(cards, func(c models.Candidate) bool { return c.ID == id })
}

// InsertAt returns a copy of cards with c inserted at idx. Out of range
// indices are clamped, so anything past the end appends.
func InsertAt(cards []models.Candidate, idx int, c models.Candidate) []models.Candidate {
	idx = max(0, min(idx, len(cards)))
	out := make([]models.Candidate, 0, len(cards)+1)
	out = append(out, cards[:idx]...)
	out = append(out, c)
	out = append(out, cards[idx:]...)
	return out
}

// Without returns a copy of cards with the given id removed
func Without(cards []models.Candidate, id string) []models.Candidate {
	out := make([]models.Candidate, 0, len(cards))
	for _, c := range cards {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}

// RemoveCard returns a copy of the board without the given candidate
func RemoveCard(b models.Board, id string) models.Board {
	next := b.Clone()
	for _, col := range models.Columns {
		if IndexOf(next[col], id) != -1 {
			next[col] = Without(next[col], id)
		}
	}
	return next
}

// ArrayMove returns a copy of cards with the element at from moved to to.
// A negative to counts from the end of the list.
func ArrayMove(cards []models.Candidate, from, to int) []models.Candidate {
	if from < 0 || from >= len(cards) {
		return slices.Clone(cards)
	}
	if to < 0 {
		to += len(cards)
	}
	item := cards[from]
	rest := make([]models.Candidate, 0, len(cards))
	rest = append(rest, cards[:from]...)
	rest = append(rest, cards[from+1:]...)
	return InsertAt(rest, to, item)
}

// MoveCard moves a candidate from src to dst at idx. If the candidate is
// not in src the board is returned unchanged.
func MoveCard(b models.Board, id string, src, dst models.ColumnID, idx int) models.Board {
	from := IndexOf(b[src], id)
	if from == -1 {
		return b
	}

	next := b.Clone()
	card := next[src][from]
	if src == dst {
		next[src] = ArrayMove(next[src], from, idx)
		return next
	}

	next[src] = Without(next[src], id)
	next[dst] = InsertAt(next[dst], idx, card)
	return next
}

// BulkMove removes every listed candidate from its column and prepends
// them to target, keeping their board order
func BulkMove(b models.Board, ids []string, target models.ColumnID) models.Board {
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	next := models.NewBoard()
	var moved []models.Candidate
	for _, col := range models.Columns {
		for _, c := range b[col] {
			if _, ok := wanted[c.ID]; ok {
				moved = append(moved, c)
				continue
			}
			next[col] = append(next[col], c)
		}
	}

	head := make([]models.Candidate, 0, len(moved)+len(next[target]))
	head = append(head, moved...)
	next[target] = append(head, next[target]...)
	return next
}
