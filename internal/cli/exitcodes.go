package cli

import (
	"errors"

	"github.com/thenoetrevino/hireboard/internal/config"
	"github.com/thenoetrevino/hireboard/internal/export"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/outreach"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, daemon errors, rolled back moves,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Candidate not found on the board.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Unreadable config, corrupted board data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Unknown columns, unknown tones, empty selections,
	// or any case where input fails validation rules.
	ExitValidation = 5
)

// ErrUsage marks errors caused by how the command was invoked
var ErrUsage = errors.New("invalid usage")

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, models.ErrCandidateNotFound),
		errors.Is(err, candidate.ErrCandidateNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrUnknownColumn),
		errors.Is(err, candidate.ErrInvalidColumn),
		errors.Is(err, candidate.ErrInvalidCandidateID),
		errors.Is(err, candidate.ErrInvalidPosition),
		errors.Is(err, candidate.ErrEmptySelection),
		errors.Is(err, outreach.ErrUnknownTone),
		errors.Is(err, export.ErrNoCandidates),
		errors.Is(err, config.ErrUnknownBackend):
		return ExitValidation
	case errors.Is(err, models.ErrInvalidScore),
		errors.Is(err, models.ErrMissingID):
		return ExitDataErr
	default:
		return ExitError
	}
}

// ErrorCode is the machine-readable code printed with an error
func ErrorCode(err error) string {
	var rolledBack candidate.RolledBack
	switch {
	case errors.As(err, &rolledBack):
		return "MOVE_ROLLED_BACK"
	case errors.Is(err, candidate.ErrMoveTimeout):
		return "MOVE_TIMEOUT"
	}

	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "CANDIDATE_NOT_FOUND"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitDataErr:
		return "DATA_ERROR"
	default:
		return "ERROR"
	}
}

// ReportedError wraps an error that has already been printed, so the
// entry point only has to pick the exit code
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string { return e.Err.Error() }

func (e *ReportedError) Unwrap() error { return e.Err }

// Reported reports whether err has already been shown to the user
func Reported(err error) bool {
	var r *ReportedError
	return errors.As(err, &r)
}
