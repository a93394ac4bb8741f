package candidate

import "github.com/thenoetrevino/hireboard/internal/models"

// MoveResult is the settled outcome of a persisted move. It is either
// Committed or RolledBack; switch on the concrete type.
type MoveResult interface {
	isMoveResult()
}

// Committed means the backend accepted the move and a refetch was started
type Committed struct {
	RequestID    string
	CandidateIDs []string
	Target       models.ColumnID
}

// RolledBack means the backend rejected the move or timed out. Snapshot is
// the board that was restored.
type RolledBack struct {
	RequestID    string
	CandidateIDs []string
	Snapshot     models.Board
	Err          error
}

func (Committed) isMoveResult()  {}
func (RolledBack) isMoveResult() {}

// Error implements error so a RolledBack can be returned directly
func (r RolledBack) Error() string {
	if r.Err == nil {
		return "move rolled back"
	}
	return "move rolled back: " + r.Err.Error()
}

// Unwrap exposes the backend error
func (r RolledBack) Unwrap() error {
	return r.Err
}

// Await blocks until the result arrives or the channel closes
func Await(ch <-chan MoveResult) MoveResult {
	return <-ch
}

// AsError converts a result to an error, nil when committed
func AsError(res MoveResult) error {
	switch r := res.(type) {
	case RolledBack:
		return r
	case nil:
		return ErrNoResult
	default:
		return nil
	}
}
