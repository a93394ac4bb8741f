package tui

import (
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// boardChangedMsg is sent after every store change
type boardChangedMsg struct{}

// boardLoadedMsg reports the initial fetch
type boardLoadedMsg struct {
	err error
}

// moveSettledMsg carries the outcome of a dispatched move
type moveSettledMsg struct {
	result candidate.MoveResult
	bulk   bool
}

type tickMsg time.Time

func (m Model) loadBoard() tea.Cmd {
	return func() tea.Msg {
		return boardLoadedMsg{err: m.app.Load(m.ctx)}
	}
}

// watchDaemon starts refetching on other sessions' changes. Without a
// daemon this does nothing.
func (m Model) watchDaemon() tea.Cmd {
	return func() tea.Msg {
		if err := m.app.Watch(m.ctx); err != nil {
			slog.Warn("live updates unavailable", "error", err)
		}
		return nil
	}
}

// waitForBoard returns a command that waits for the next store change
func waitForBoard(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return boardChangedMsg{}
	}
}

// awaitMove waits for a dispatched move to settle
func awaitMove(ch <-chan candidate.MoveResult, bulk bool) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		return moveSettledMsg{result: candidate.Await(ch), bulk: bulk}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
