package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/config"
	"github.com/thenoetrevino/hireboard/internal/tui"
)

// shutdownGrace is how long in-flight moves get to settle after a signal
const shutdownGrace = 2 * time.Second

// Launch starts the interactive board and blocks until it exits or ctx is
// cancelled. A nil cfg loads the user's config.
func Launch(ctx context.Context, cfg *config.Config) error {
	c, err := cli.NewCLI(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to start board: %w", err)
	}
	defer func() {
		if err := c.Close(); err != nil {
			slog.Error("error closing board", "error", err)
		}
	}()

	model := tui.New(ctx, c.App, c.Config)
	defer model.Close()

	p := tea.NewProgram(model, tea.WithContext(ctx))

	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
		}
	}

	return nil
}
