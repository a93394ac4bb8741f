package models

// Board maps every pipeline column to its ordered list of candidates.
// Order within a column is rank. A candidate id appears in exactly one
// column once a drag has settled.
type Board map[ColumnID][]Candidate

// NewBoard returns a board holding all five columns, each empty
func NewBoard() Board {
	b := make(Board, len(Columns))
	for _, col := range Columns {
		b[col] = []Candidate{}
	}
	return b
}

// Clone returns a deep copy of the board restricted to the known columns.
// Missing columns come back empty.
func (b Board) Clone() Board {
	out := make(Board, len(Columns))
	for _, col := range Columns {
		cards := b[col]
		cp := make([]Candidate, len(cards))
		copy(cp, cards)
		out[col] = cp
	}
	return out
}

// Find returns the column and index of the candidate with the given id
func (b Board) Find(id string) (ColumnID, int, bool) {
	for _, col := range Columns {
		for i, c := range b[col] {
			if c.ID == id {
				return col, i, true
			}
		}
	}
	return "", -1, false
}

// Candidate returns the card with the given id, wherever it sits
func (b Board) Candidate(id string) (Candidate, bool) {
	col, idx, ok := b.Find(id)
	if !ok {
		return Candidate{}, false
	}
	return b[col][idx], true
}

// Flatten returns every candidate in column order, then rank order
func (b Board) Flatten() []Candidate {
	var all []Candidate
	for _, col := range Columns {
		all = append(all, b[col]...)
	}
	return all
}

// Count returns the total number of candidates on the board
func (b Board) Count() int {
	n := 0
	for _, col := range Columns {
		n += len(b[col])
	}
	return n
}

// Equal reports whether both boards hold the same cards in the same order
func (b Board) Equal(other Board) bool {
	for _, col := range Columns {
		left, right := b[col], other[col]
		if len(left) != len(right) {
			return false
		}
		for i := range left {
			if left[i] != right[i] {
				return false
			}
		}
	}
	return true
}

// IDs returns the candidate ids in a column, in rank order
func (b Board) IDs(col ColumnID) []string {
	ids := make([]string, 0, len(b[col]))
	for _, c := range b[col] {
		ids = append(ids, c.ID)
	}
	return ids
}
