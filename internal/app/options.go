package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/notify"
	"github.com/thenoetrevino/hireboard/internal/outreach"
)

// Relay forwards committed transitions to an outside system
type Relay interface {
	Observe(t events.Transition)
	Close()
}

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	eventClient events.EventPublisher
	logger      *slog.Logger
	notifiers   []notify.Notifier
	relay       Relay
	moveTimeout time.Duration
	tone        outreach.Tone
}

// WithEventPublisher connects the app to the daemon for cross-session sync
func WithEventPublisher(ec events.EventPublisher) Option {
	return func(cfg *appConfig) {
		cfg.eventClient = ec
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithNotifier adds a notifier alongside the in-memory notification state
func WithNotifier(n notify.Notifier) Option {
	return func(cfg *appConfig) {
		cfg.notifiers = append(cfg.notifiers, n)
	}
}

// WithRelay forwards transitions to r. The app closes r on Close.
func WithRelay(r Relay) Option {
	return func(cfg *appConfig) {
		cfg.relay = r
	}
}

// WithMoveTimeout bounds each backend call
func WithMoveTimeout(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.moveTimeout = d
	}
}

// WithTone sets the tone of new outreach drafts
func WithTone(t outreach.Tone) Option {
	return func(cfg *appConfig) {
		cfg.tone = t
	}
}
