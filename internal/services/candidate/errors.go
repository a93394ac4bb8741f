package candidate

import "errors"

// Candidate-move errors
var (
	// Validation errors
	ErrInvalidCandidateID = errors.New("invalid candidate ID")
	ErrInvalidColumn      = errors.New("invalid column")
	ErrInvalidPosition    = errors.New("invalid position: must be >= 0")
	ErrEmptySelection     = errors.New("no candidates selected")

	// Business logic errors
	ErrCandidateNotFound = errors.New("candidate not found")

	// Persistence errors
	ErrMoveTimeout  = errors.New("move request timed out")
	ErrBackendPanic = errors.New("backend failed unexpectedly")
	ErrNoResult     = errors.New("move finished without a result")
)

// Notification text shown when a persisted move is reverted
const (
	MoveFailedMessage     = "Failed to move candidate. Reverting changes."
	BulkMoveFailedMessage = "Failed to move candidates. Reverting changes."
)
