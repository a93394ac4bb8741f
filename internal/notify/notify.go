// Package notify carries transient user-facing messages (rollback
// warnings, offer celebrations) from the core to whatever front end is
// running.
package notify

import (
	"log/slog"
	"sync"
	"time"
)

// Level is the severity of a notification
type Level int

const (
	// LevelInfo is a neutral status message
	LevelInfo Level = iota
	// LevelSuccess is a celebration or confirmation
	LevelSuccess
	// LevelWarning is a recoverable problem
	LevelWarning
	// LevelError is a failed action the user should know about
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notification is a single message with a severity level
type Notification struct {
	Level   Level
	Message string
	At      time.Time
}

// Notifier receives notifications. Implementations must be safe for
// concurrent use since persistence results arrive on background goroutines.
type Notifier interface {
	Notify(level Level, message string)
}

// Func adapts a plain function to Notifier
type Func func(level Level, message string)

// Notify calls f
func (f Func) Notify(level Level, message string) { f(level, message) }

// Log writes notifications to the structured logger. It is the fallback
// when no front end is attached.
type Log struct{}

// Notify logs the message at the matching slog level
func (Log) Notify(level Level, message string) {
	switch level {
	case LevelError:
		slog.Error(message)
	case LevelWarning:
		slog.Warn(message)
	default:
		slog.Info(message, "level", level.String())
	}
}

// Fanout delivers each notification to every notifier in order
type Fanout []Notifier

// Notify forwards to every non-nil notifier
func (f Fanout) Notify(level Level, message string) {
	for _, n := range f {
		if n != nil {
			n.Notify(level, message)
		}
	}
}

// State collects notifications until a front end drains them
type State struct {
	mu            sync.Mutex
	notifications []Notification
	now           func() time.Time
}

// Compile-time verification that *State implements Notifier
var _ Notifier = (*State)(nil)

// NewState creates an empty notification state
func NewState() *State {
	return &State{now: time.Now}
}

// Notify appends a notification
func (s *State) Notify(level Level, message string) {
	s.Add(level, message)
}

// Add appends a notification with the given level
func (s *State) Add(level Level, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
		At:      s.now(),
	})
}

// Clear removes all notifications
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = nil
}

// ClearLevel removes all notifications of one level
func (s *State) ClearLevel(level Level) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.Level != level {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// Expire drops notifications older than ttl
func (s *State) Expire(ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := s.now().Add(-ttl)
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.At.After(cutoff) {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// All returns a copy of the current notifications
func (s *State) All() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// Drain returns all notifications and clears the state
func (s *State) Drain() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notifications
	s.notifications = nil
	return out
}

// HasAny reports whether any notification is pending
func (s *State) HasAny() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notifications) > 0
}
