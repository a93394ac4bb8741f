package events

import (
	"errors"
	"os"
	"syscall"
)

// ErrorCode says why live updates are unavailable
type ErrorCode int

const (
	ErrSocketNotFound ErrorCode = iota
	ErrSocketPermission
	ErrDaemonNotRunning
	ErrConnectionRefused
)

// startHint is shown whenever starting the daemon would fix the problem
const startHint = "Start it with: hireboard daemon &"

// DaemonError explains a failed daemon connection to the user
type DaemonError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Err     error
}

func (e *DaemonError) Error() string {
	if e.Hint != "" {
		return e.Message + ". " + e.Hint
	}
	return e.Message
}

func (e *DaemonError) Unwrap() error { return e.Err }

// ClassifyDaemonError maps a dial or socket error to a user-facing
// explanation. Boards keep working without the daemon, they just stop
// seeing other sessions' moves.
func ClassifyDaemonError(err error) *DaemonError {
	if err == nil {
		return nil
	}

	var errno syscall.Errno
	switch {
	case errors.Is(err, os.ErrNotExist):
		return &DaemonError{Code: ErrSocketNotFound, Message: "Live updates off: no daemon socket", Hint: startHint, Err: err}
	case errors.Is(err, os.ErrPermission):
		return &DaemonError{
			Code:    ErrSocketPermission,
			Message: "Live updates off: socket permission denied",
			Hint:    "Check permissions with: chmod 700 ~/.hireboard/",
			Err:     err,
		}
	case errors.As(err, &errno) && errno == syscall.ECONNREFUSED:
		return &DaemonError{
			Code:    ErrConnectionRefused,
			Message: "Live updates off: daemon refused the connection",
			Hint:    "It may have crashed. " + startHint,
			Err:     err,
		}
	}
	return &DaemonError{Code: ErrDaemonNotRunning, Message: "Live updates off: daemon not running", Hint: startHint, Err: err}
}
