package models

import "time"

// MoveRequest is the record sent to the persistence backend when a drag
// settles. Snapshot holds the pre-drag board when the caller has already
// applied the move to the cache.
type MoveRequest struct {
	ID           string   `json:"id"`
	CandidateID  string   `json:"candidate_id"`
	SourceColumn ColumnID `json:"source_column"`
	TargetColumn ColumnID `json:"target_column"`
	NewIndex     int      `json:"new_index"`
	Snapshot     Board    `json:"-"`
}

// BulkMoveRequest moves many candidates to the head of one column
type BulkMoveRequest struct {
	ID           string   `json:"id"`
	CandidateIDs []string `json:"candidate_ids"`
	TargetColumn ColumnID `json:"target_column"`
}

// MoveRecord is one persisted entry of a candidate's move history
type MoveRecord struct {
	ID          string
	CandidateID string
	FromColumn  ColumnID
	ToColumn    ColumnID
	Position    int
	MovedBy     string
	MovedAt     time.Time
}
