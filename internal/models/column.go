package models

import (
	"fmt"
	"strings"
)

// ColumnID identifies one fixed pipeline stage on the board.
// The set is closed: no column is added or removed at runtime.
type ColumnID string

const (
	ColumnNew       ColumnID = "new"
	ColumnScreening ColumnID = "screening"
	ColumnInterview ColumnID = "interview"
	ColumnOffer     ColumnID = "offer"
	ColumnRejected  ColumnID = "rejected"
)

// Columns lists every pipeline stage in display order
var Columns = []ColumnID{
	ColumnNew,
	ColumnScreening,
	ColumnInterview,
	ColumnOffer,
	ColumnRejected,
}

// columnTitles holds the human-readable header for each column
var columnTitles = map[ColumnID]string{
	ColumnNew:       "New",
	ColumnScreening: "Screening",
	ColumnInterview: "Interview",
	ColumnOffer:     "Offer",
	ColumnRejected:  "Rejected",
}

// Valid reports whether c is one of the five pipeline stages
func (c ColumnID) Valid() bool {
	_, ok := columnTitles[c]
	return ok
}

// Title returns the display name of the column
func (c ColumnID) Title() string {
	if title, ok := columnTitles[c]; ok {
		return title
	}
	return string(c)
}

// Index returns the display position of the column, or -1 if unknown
func (c ColumnID) Index() int {
	for i, col := range Columns {
		if col == c {
			return i
		}
	}
	return -1
}

// ParseColumn resolves a user-supplied column name (case-insensitive)
func ParseColumn(name string) (ColumnID, error) {
	col := ColumnID(strings.ToLower(strings.TrimSpace(name)))
	if !col.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return col, nil
}

// IsColumnID reports whether a droppable id refers to a column container
// rather than a candidate card
func IsColumnID(id string) bool {
	return ColumnID(id).Valid()
}
