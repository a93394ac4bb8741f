package tui

import (
	"log/slog"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hireboard/internal/dnd"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/notify"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	select {
	case <-m.ctx.Done():
		return m, tea.Quit
	default:
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case boardLoadedMsg:
		if msg.err != nil {
			slog.Error("failed to load board", "error", msg.err)
			m.app.Notifications.Add(notify.LevelError, "Failed to load candidates")
		}
		m.clampCursor()
		return m, nil

	case boardChangedMsg:
		if m.dragging() {
			if id := m.app.Controller.TrackedID(); id != "" {
				m.focusCard(id)
			}
		} else {
			m.clampCursor()
		}
		return m, waitForBoard(m.boardChanged)

	case moveSettledMsg:
		if rb, ok := msg.result.(candidate.RolledBack); ok {
			slog.Info("move rolled back", "candidate_ids", rb.CandidateIDs, "error", rb.Err)
		}
		m.clampCursor()
		return m, nil

	case tickMsg:
		m.app.Notifications.Expire(notificationTTL)
		return m, tick()

	case tea.KeyPressMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeSearch:
		return m.handleSearchMode(msg)
	case modeHelp:
		m.mode = modeNormal
		return m, nil
	case modeColumnPicker:
		return m.handleColumnPicker(msg)
	case modeCompare:
		return m.handleCompareMode(msg)
	case modeDrawer:
		return m.handleDrawerMode(msg)
	}

	if m.dragging() {
		return m.handleDragKey(msg)
	}
	return m.handleNormalMode(msg)
}

func (m Model) dragging() bool {
	return m.app.Controller.State() == dnd.Dragging
}

func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.PrevColumn):
		m.col--
		m.clampCursor()
	case key.Matches(msg, keys.NextColumn):
		m.col++
		m.clampCursor()
	case key.Matches(msg, keys.PrevCard):
		m.row--
		m.clampCursor()
	case key.Matches(msg, keys.NextCard):
		m.row++
		m.clampCursor()

	case key.Matches(msg, keys.Grab):
		if m.app.Selection.Enabled() {
			return m.toggleCurrent()
		}
		return m.startDrag()

	case key.Matches(msg, keys.ToggleSelectMode):
		m.app.Selection.ToggleMode()
	case key.Matches(msg, keys.ToggleSelect):
		return m.toggleCurrent()
	case key.Matches(msg, keys.SelectAll):
		if m.app.Selection.Enabled() {
			m.app.Selection.SelectAll(m.visible())
		}
	case key.Matches(msg, keys.BulkMove):
		return m.openColumnPicker()
	case key.Matches(msg, keys.BulkOutreach):
		return m.openBulkDraft(models.ColumnRejected)
	case key.Matches(msg, keys.Compare):
		return m.openComparison()

	case key.Matches(msg, keys.Search):
		m.mode = modeSearch
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		return m, m.search.Focus()
	case key.Matches(msg, keys.CancelDrag):
		if m.query != "" {
			m.query = ""
			m.clampCursor()
		}
	case key.Matches(msg, keys.Refresh):
		m.app.Store.Invalidate(m.ctx)
	case key.Matches(msg, keys.ShowHelp):
		m.mode = modeHelp
	}
	return m, nil
}

func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.mode = modeNormal
		return m, nil
	case "esc":
		m.search.Blur()
		m.search.SetValue("")
		m.query = ""
		m.mode = modeNormal
		m.clampCursor()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.query = m.search.Value()
	m.row = 0
	m.clampCursor()
	return m, cmd
}
