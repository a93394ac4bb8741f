package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/thenoetrevino/hireboard/internal/app"
	"github.com/thenoetrevino/hireboard/internal/board"
	"github.com/thenoetrevino/hireboard/internal/broker"
	"github.com/thenoetrevino/hireboard/internal/config"
	"github.com/thenoetrevino/hireboard/internal/daemon"
	"github.com/thenoetrevino/hireboard/internal/database"
	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/mockapi"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/outreach"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// daemonDialTimeout bounds the optional daemon connection attempt
const daemonDialTimeout = 250 * time.Millisecond

// HistorySource reads recorded moves
type HistorySource interface {
	ForCandidate(ctx context.Context, candidateID string, limit int) ([]models.MoveRecord, error)
	Recent(ctx context.Context, limit int) ([]models.MoveRecord, error)
}

// Seeder writes a full board into a backend that supports it
type Seeder interface {
	Seed(ctx context.Context, b models.Board) error
	Count(ctx context.Context) (int, error)
}

// CLI represents the CLI application context
type CLI struct {
	Config  *config.Config
	App     *app.App
	History HistorySource
	Seeder  Seeder // nil when the backend cannot be seeded

	closers []func() error
}

// NewCLI builds the backend named by cfg, connects to the daemon and the
// NATS relay when available, and wires the application container.
// A nil cfg loads the user's config file.
func NewCLI(ctx context.Context, cfg *config.Config) (*CLI, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &CLI{Config: cfg}

	var (
		fetcher board.Fetcher
		backend candidate.Backend
	)

	switch cfg.Backend {
	case config.BackendSimulated:
		srv := mockapi.New(mockapi.Config{
			FetchLatency: cfg.Simulated.FetchLatency,
			MoveLatency:  cfg.Simulated.MoveLatency,
			BulkLatency:  cfg.Simulated.BulkLatency,
			FailureRate:  cfg.Simulated.FailureRate,
		}, nil)
		fetcher, backend = srv, srv
		c.History = SimulatedHistory{Server: srv}
	default:
		db, err := database.InitDB(ctx, cfg.Database.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.closers = append(c.closers, db.Close)

		repo := database.NewRepository(db)
		if err := SeedIfEmpty(ctx, repo); err != nil {
			_ = c.Close()
			return nil, err
		}
		fetcher, backend = repo, repo
		c.History = repo
		c.Seeder = repo
	}

	opts := []app.Option{
		app.WithLogger(slog.Default().With("backend", cfg.Backend)),
		app.WithMoveTimeout(cfg.MoveTimeout),
	}
	if tone, err := outreach.ParseTone(cfg.Outreach.DefaultTone); err == nil {
		opts = append(opts, app.WithTone(tone))
	}
	if ec := connectDaemon(ctx); ec != nil {
		opts = append(opts, app.WithEventPublisher(ec))
	}
	if cfg.NATS.URL != "" {
		relay, err := broker.Connect(broker.Options{
			URL:     cfg.NATS.URL,
			Token:   cfg.NATS.Token,
			Subject: cfg.NATS.Subject,
		})
		if err != nil {
			// transitions stay local
			slog.Warn("nats relay unavailable", "url", cfg.NATS.URL, "error", err)
		} else {
			opts = append(opts, app.WithRelay(relay))
		}
	}

	c.App = app.New(fetcher, backend, opts...)
	return c, nil
}

// connectDaemon returns a connected client, or nil when no daemon is running
func connectDaemon(ctx context.Context) events.EventPublisher {
	socketPath, err := daemon.DefaultSocketPath()
	if err != nil {
		return nil
	}
	client, err := events.NewClient(socketPath)
	if err != nil {
		return nil
	}

	dialCtx, cancel := context.WithTimeout(ctx, daemonDialTimeout)
	defer cancel()
	if err := client.Connect(dialCtx); err != nil {
		_ = client.Close()
		daemonErr := events.ClassifyDaemonError(err)
		slog.Debug("continuing without live updates", "socket_path", socketPath, "message", daemonErr.Message, "hint", daemonErr.Hint)
		return nil
	}
	return client
}

// SeedIfEmpty loads the demo pipeline into an empty backend
func SeedIfEmpty(ctx context.Context, s Seeder) error {
	n, err := s.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count candidates: %w", err)
	}
	if n > 0 {
		return nil
	}
	slog.Info("seeding empty database with demo pipeline")
	if err := s.Seed(ctx, mockapi.SeedBoard()); err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

// Close releases the application and then the backend
func (c *CLI) Close() error {
	var firstErr error
	if c.App != nil {
		firstErr = c.App.Close()
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}

// SimulatedHistory serves move history from the in-process backend
type SimulatedHistory struct {
	Server *mockapi.Server
}

// ForCandidate returns the candidate's moves, newest first
func (h SimulatedHistory) ForCandidate(_ context.Context, candidateID string, limit int) ([]models.MoveRecord, error) {
	var out []models.MoveRecord
	for _, rec := range h.newestFirst() {
		if rec.CandidateID == candidateID {
			out = append(out, rec)
		}
	}
	return truncate(out, limit), nil
}

// Recent returns the latest moves across the board, newest first
func (h SimulatedHistory) Recent(_ context.Context, limit int) ([]models.MoveRecord, error) {
	return truncate(h.newestFirst(), limit), nil
}

func (h SimulatedHistory) newestFirst() []models.MoveRecord {
	recs := h.Server.History()
	slices.Reverse(recs)
	return recs
}

func truncate(recs []models.MoveRecord, limit int) []models.MoveRecord {
	if limit > 0 && len(recs) > limit {
		return recs[:limit]
	}
	return recs
}
