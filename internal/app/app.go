package app

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/hireboard/internal/board"
	"github.com/thenoetrevino/hireboard/internal/dnd"
	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/notify"
	"github.com/thenoetrevino/hireboard/internal/outreach"
	"github.com/thenoetrevino/hireboard/internal/selection"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// App holds all application services and provides dependency injection.
// Front ends (CLI, TUI) build one App and drive the board through it.
type App struct {
	Store            *board.Store
	CandidateService candidate.Service
	Selection        *selection.Selection
	Bus              *events.Bus
	Controller       *dnd.Controller
	Drafter          *outreach.Drafter
	Notifications    *notify.State

	eventClient events.EventPublisher
	relay       Relay
	logger      *slog.Logger

	unsubscribe []func()
	watchOnce   sync.Once
	closeOnce   sync.Once
}

// New creates a new App with all services initialized.
// fetcher loads the board, backend persists moves.
func New(fetcher board.Fetcher, backend candidate.Backend, opts ...Option) *App {
	cfg := &appConfig{
		moveTimeout: candidate.DefaultMoveTimeout,
		tone:        outreach.ToneProfessional,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	notifications := notify.NewState()
	notifier := notify.Fanout(append([]notify.Notifier{notifications}, cfg.notifiers...))

	store := board.NewStore(fetcher)
	service := candidate.NewService(store, backend,
		candidate.WithTimeout(cfg.moveTimeout),
		candidate.WithNotifier(notifier),
		candidate.WithEventPublisher(cfg.eventClient),
	)
	sel := selection.New(store, service)
	bus := events.NewBus()
	drafter := outreach.NewDrafter(cfg.tone)

	a := &App{
		Store:            store,
		CandidateService: service,
		Selection:        sel,
		Bus:              bus,
		Controller:       dnd.NewController(store, service, bus, sel),
		Drafter:          drafter,
		Notifications:    notifications,
		eventClient:      cfg.eventClient,
		relay:            cfg.relay,
		logger:           cfg.logger,
	}

	a.unsubscribe = append(a.unsubscribe,
		bus.Subscribe(drafter.Observe),
		bus.Subscribe(outreach.Celebrate(notifier)),
	)
	if cfg.relay != nil {
		a.unsubscribe = append(a.unsubscribe, bus.Subscribe(cfg.relay.Observe))
	}

	return a
}

// Load fetches the board into the store
func (a *App) Load(ctx context.Context) error {
	return a.Store.Load(ctx)
}

// Watch refetches the board whenever another session commits a change.
// It returns immediately and is a no-op without an event client or when
// already watching.
func (a *App) Watch(ctx context.Context) error {
	if a.eventClient == nil {
		return nil
	}

	var err error
	a.watchOnce.Do(func() {
		if subErr := a.eventClient.Subscribe(board.QueryKey); subErr != nil {
			a.logger.Debug("board subscription not sent", "error", subErr)
		}

		var incoming <-chan events.Event
		incoming, err = a.eventClient.Listen(ctx)
		if err != nil {
			return
		}

		go func() {
			for evt := range incoming {
				if evt.Type != events.EventBoardChanged || !evt.Matches(board.QueryKey) {
					continue
				}
				a.logger.Debug("board changed elsewhere, refetching", "candidate_id", evt.CandidateID, "sequence_id", evt.SequenceID)
				a.Store.Invalidate(ctx)
			}
		}()
	})
	return err
}

// Close waits for in-flight refetches and releases the event client and relay
func (a *App) Close() error {
	var err error
	a.closeOnce.Do(func() {
		for _, unsub := range a.unsubscribe {
			unsub()
		}
		a.Store.CancelRefetch()
		a.Store.Wait()

		if a.relay != nil {
			a.relay.Close()
		}
		if a.eventClient != nil {
			err = a.eventClient.Close()
		}
	})
	return err
}
