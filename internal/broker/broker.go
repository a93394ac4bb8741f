// Package broker relays column transitions to a NATS subject so other
// services (ATS sync, mailers) can react to pipeline changes.
package broker

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/models"
)

// DefaultSubject is used when no subject is configured
const DefaultSubject = "hireboard.transitions"

// ErrNoURL is returned by Connect when neither config nor env name a server
var ErrNoURL = errors.New("nats url not configured")

// Options holds the connection settings. Empty fields fall back to the
// NATS_URL and NATS_TOKEN environment variables.
type Options struct {
	URL     string
	Token   string
	Subject string
}

// Publisher is the part of *nats.Conn the relay needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// Compile-time verification that *nats.Conn satisfies Publisher
var _ Publisher = (*nats.Conn)(nil)

// Envelope is the JSON payload published for each transition
type Envelope struct {
	CandidateID string           `json:"candidate_id"`
	Name        string           `json:"name"`
	Role        string           `json:"role"`
	From        models.ColumnID  `json:"from"`
	To          models.ColumnID  `json:"to"`
	Card        models.Candidate `json:"card"`
	At          time.Time        `json:"at"`
}

// Relay forwards transitions from the bus to NATS
type Relay struct {
	pub     Publisher
	subject string
	now     func() time.Time
	close   func()
}

// NewRelay wraps an existing publisher
func NewRelay(pub Publisher, subject string) *Relay {
	if subject == "" {
		subject = DefaultSubject
	}
	return &Relay{pub: pub, subject: subject, now: time.Now}
}

// Connect dials NATS and returns a relay that owns the connection
func Connect(opts Options) (*Relay, error) {
	url := opts.URL
	if url == "" {
		url = os.Getenv("NATS_URL")
	}
	if url == "" {
		return nil, ErrNoURL
	}
	token := opts.Token
	if token == "" {
		token = os.Getenv("NATS_TOKEN")
	}

	natsOpts := []nats.Option{
		nats.Name("hireboard"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				slog.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			slog.Info("nats reconnected", "url", nc.ConnectedUrl())
		}),
	}
	if token != "" {
		natsOpts = append(natsOpts, nats.Token(token))
	}

	nc, err := nats.Connect(url, natsOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats at %s: %w", url, err)
	}

	r := NewRelay(nc, opts.Subject)
	r.close = func() {
		if err := nc.Drain(); err != nil {
			slog.Warn("nats drain failed", "error", err)
			nc.Close()
		}
	}
	return r, nil
}

// Subject returns the subject transitions are published on
func (r *Relay) Subject() string {
	return r.subject
}

// Observe is an events.Observer. Publish failures are logged and dropped
// since the board itself is already committed.
func (r *Relay) Observe(t events.Transition) {
	if err := r.Forward(t); err != nil {
		slog.Error("failed to relay transition", "candidate_id", t.CandidateID, "error", err)
	}
}

// Forward publishes a single transition
func (r *Relay) Forward(t events.Transition) error {
	data, err := json.Marshal(Envelope{
		CandidateID: t.CandidateID,
		Name:        t.Card.Name,
		Role:        t.Card.Role,
		From:        t.Source,
		To:          t.Target,
		Card:        t.Card,
		At:          r.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode transition: %w", err)
	}

	if err := r.pub.Publish(r.subject, data); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", r.subject, err)
	}
	slog.Debug("relayed transition", "subject", r.subject, "candidate_id", t.CandidateID, "to", t.Target)
	return nil
}

// Close drains the connection when the relay owns one
func (r *Relay) Close() {
	if r.close != nil {
		r.close()
		r.close = nil
	}
}
