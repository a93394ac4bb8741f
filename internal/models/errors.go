package models

import "errors"

// Domain-specific errors for board operations
var (
	// ErrUnknownColumn indicates a column id outside the fixed pipeline stages
	ErrUnknownColumn = errors.New("unknown column")

	// ErrCandidateNotFound indicates the candidate is not on the board
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrMissingID indicates a candidate without an identifier
	ErrMissingID = errors.New("candidate id is required")

	// ErrInvalidScore indicates a match score outside 0-100
	ErrInvalidScore = errors.New("match score must be between 0 and 100")
)
