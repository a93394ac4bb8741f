package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hireboard/internal/app"
	"github.com/thenoetrevino/hireboard/internal/mockapi"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/notify"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// newTestModel builds a sized board over an in-process backend with no
// latency
func newTestModel(t *testing.T, cfg mockapi.Config) (Model, *mockapi.Server) {
	t.Helper()

	srv := mockapi.New(cfg, nil)
	a := app.New(srv, srv)
	require.NoError(t, a.Load(context.Background()))

	m := New(context.Background(), a, nil)
	t.Cleanup(func() {
		m.Close()
		_ = a.Close()
	})

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 30})
	return m, srv
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	}
	return tea.KeyPressMsg(tea.Key{Text: s, Code: []rune(s)[0]})
}

// press sends each key in order and returns the command of the last one
func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(keyPress(k))
		out, ok := next.(Model)
		require.True(t, ok)
		m = out
	}
	return m, cmd
}

// settle runs a move command and feeds its result back to the model
func settle(t *testing.T, m Model, cmd tea.Cmd) (Model, candidate.MoveResult) {
	t.Helper()
	require.NotNil(t, cmd, "expected a pending move")
	msg, ok := cmd().(moveSettledMsg)
	require.True(t, ok)
	m.app.Store.Wait()
	return update(t, m, msg), msg.result
}

func TestNavigation(t *testing.T) {
	m, _ := newTestModel(t, mockapi.Config{})

	card, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "c1", card.ID)

	m, _ = press(t, m, "j", "j", "j", "j")
	card, _ = m.current()
	assert.Equal(t, "c10", card.ID, "cursor stops at the last card")

	m, _ = press(t, m, "l")
	card, _ = m.current()
	assert.Equal(t, "c5", card.ID, "row clamps to the shorter column")

	m, _ = press(t, m, "l", "l", "l", "l", "l")
	assert.Equal(t, len(models.Columns)-1, m.col)
	card, _ = m.current()
	assert.Equal(t, "c8", card.ID)
}

func TestDragAcrossColumns(t *testing.T) {
	m, srv := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "space")
	require.True(t, m.dragging())

	m, _ = press(t, m, "l")
	assert.Equal(t, []string{"c1", "c4", "c5"}, m.app.Store.Get().IDs(models.ColumnScreening))
	assert.Equal(t, []string{"c2", "c3", "c10"}, m.app.Store.Get().IDs(models.ColumnNew))
	assert.Equal(t, 1, m.col, "cursor follows the dragged card")

	m, cmd := press(t, m, "space")
	assert.False(t, m.dragging())
	assert.Equal(t, modeNormal, m.mode, "screening drafts no outreach")

	m, res := settle(t, m, cmd)
	assert.IsType(t, candidate.Committed{}, res)
	assert.Equal(t, []string{"c1", "c4", "c5"}, srv.Board().IDs(models.ColumnScreening))
	assert.True(t, m.app.Store.Get().Equal(srv.Board()))
}

func TestDragIntoInterviewOpensDrawer(t *testing.T) {
	m, srv := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "space", "l", "l")
	assert.Equal(t, []string{"c1", "c6"}, m.app.Store.Get().IDs(models.ColumnInterview))

	m, cmd := press(t, m, "space")
	require.Equal(t, modeDrawer, m.mode)
	draft, ok := m.app.Drafter.Current()
	require.True(t, ok)
	assert.Equal(t, "c1", draft.Candidate.ID)
	assert.Contains(t, m.View().Content, "Alice")

	before := draft.Tone
	m, _ = press(t, m, "t")
	draft, _ = m.app.Drafter.Current()
	assert.NotEqual(t, before, draft.Tone)

	m, _ = press(t, m, "d")
	assert.Equal(t, modeNormal, m.mode)
	_, ok = m.app.Drafter.Current()
	assert.False(t, ok)

	_, res := settle(t, m, cmd)
	assert.IsType(t, candidate.Committed{}, res)
	assert.Equal(t, []string{"c1", "c6"}, srv.Board().IDs(models.ColumnInterview))
}

func TestSendingDraftNotifies(t *testing.T) {
	m, _ := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "space", "l", "l")
	m, cmd := press(t, m, "space")
	require.Equal(t, modeDrawer, m.mode)

	m, _ = press(t, m, "enter")
	assert.Equal(t, modeNormal, m.mode)

	var sent bool
	for _, n := range m.app.Notifications.All() {
		if n.Level == notify.LevelSuccess && n.Message == "✉ Invitation sent to Alice Johnson" {
			sent = true
		}
	}
	assert.True(t, sent)
	settle(t, m, cmd)
}

func TestCancelDragKeepsCrossColumnMove(t *testing.T) {
	m, srv := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "space", "l", "esc")
	assert.False(t, m.dragging())
	assert.Equal(t, []string{"c1", "c4", "c5"}, m.app.Store.Get().IDs(models.ColumnScreening))
	assert.True(t, srv.Board().Equal(mockapi.SeedBoard()), "nothing was persisted")
	assert.Empty(t, srv.History())
}

func TestReorderWithinColumn(t *testing.T) {
	m, srv := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "space", "j", "j")
	assert.Equal(t, "c3", m.dragOver)

	m, cmd := press(t, m, "space")
	assert.Equal(t, []string{"c2", "c3", "c1", "c10"}, m.app.Store.Get().IDs(models.ColumnNew))

	_, res := settle(t, m, cmd)
	assert.IsType(t, candidate.Committed{}, res)
	assert.Equal(t, []string{"c2", "c3", "c1", "c10"}, srv.Board().IDs(models.ColumnNew))
}

func TestDropInPlaceKeepsOrder(t *testing.T) {
	m, srv := newTestModel(t, mockapi.Config{})

	m, cmd := press(t, m, "space", "space")
	assert.False(t, m.dragging())
	if cmd != nil {
		settle(t, m, cmd)
	}
	assert.True(t, srv.Board().Equal(mockapi.SeedBoard()))
}

func TestRollbackRestoresBoard(t *testing.T) {
	m, srv := newTestModel(t, mockapi.Config{FailureRate: 1})

	m, _ = press(t, m, "space", "l")
	m, cmd := press(t, m, "space")

	m, res := settle(t, m, cmd)
	assert.IsType(t, candidate.RolledBack{}, res)
	assert.True(t, m.app.Store.Get().Equal(mockapi.SeedBoard()))
	assert.True(t, srv.Board().Equal(mockapi.SeedBoard()))

	var failed bool
	for _, n := range m.app.Notifications.All() {
		if n.Level == notify.LevelError && n.Message == candidate.MoveFailedMessage {
			failed = true
		}
	}
	assert.True(t, failed)
	assert.Contains(t, m.View().Content, "Reverting changes")
}

func TestBulkMoveThroughPicker(t *testing.T) {
	m, srv := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "v", "x", "j", "x")
	assert.Equal(t, 2, m.app.Selection.Count())

	m, _ = press(t, m, "space")
	assert.False(t, m.dragging(), "space toggles selection instead of grabbing")
	assert.Equal(t, 1, m.app.Selection.Count())
	m, _ = press(t, m, "space")

	m, _ = press(t, m, "m")
	require.Equal(t, modeColumnPicker, m.mode)
	assert.Contains(t, m.View().Content, "Move 2 candidates to")

	m, cmd := press(t, m, "j", "enter")
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, 0, m.app.Selection.Count())
	assert.Equal(t, []string{"c1", "c2", "c4", "c5"}, m.app.Store.Get().IDs(models.ColumnScreening))

	_, res := settle(t, m, cmd)
	assert.IsType(t, candidate.Committed{}, res)
	assert.Equal(t, []string{"c1", "c2", "c4", "c5"}, srv.Board().IDs(models.ColumnScreening))
}

func TestBulkMoveWithoutSelectionWarns(t *testing.T) {
	m, _ := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "m")
	assert.Equal(t, modeNormal, m.mode)

	all := m.app.Notifications.All()
	require.Len(t, all, 1)
	assert.Equal(t, notify.LevelWarning, all[0].Level)
}

func TestBulkRejectDraftsThenMoves(t *testing.T) {
	m, srv := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "v", "x", "l", "x")
	m, _ = press(t, m, "o")
	require.Equal(t, modeDrawer, m.mode)
	require.NotNil(t, m.bulk)
	assert.Len(t, m.bulk.candidates, 2)
	assert.True(t, m.app.Store.Get().Equal(mockapi.SeedBoard()), "nothing moves before sending")

	tone := m.bulk.tone
	m, _ = press(t, m, "t")
	assert.NotEqual(t, tone, m.bulk.tone)
	assert.Contains(t, m.View().Content, "Rejection for 2 candidates")

	m, cmd := press(t, m, "enter")
	assert.Equal(t, modeNormal, m.mode)
	assert.Nil(t, m.bulk)
	assert.Equal(t, []string{"c1", "c4", "c8"}, m.app.Store.Get().IDs(models.ColumnRejected))

	settle(t, m, cmd)
	assert.Equal(t, []string{"c1", "c4", "c8"}, srv.Board().IDs(models.ColumnRejected))
}

func TestSearchFiltersBoard(t *testing.T) {
	m, _ := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "/")
	require.Equal(t, modeSearch, m.mode)
	m, _ = press(t, m, "f", "i", "o", "n", "a")
	assert.Equal(t, "fiona", m.query)

	m, _ = press(t, m, "enter")
	assert.Equal(t, modeNormal, m.mode)
	assert.Equal(t, 1, m.visible().Count())

	m, _ = press(t, m, "l", "l")
	card, ok := m.current()
	require.True(t, ok)
	assert.Equal(t, "c6", card.ID)

	m, _ = press(t, m, "esc")
	assert.Empty(t, m.query)
	assert.Equal(t, mockapi.SeedBoard().Count(), m.visible().Count())
}

func TestCompareSelected(t *testing.T) {
	m, _ := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "v", "x", "j", "x", "c")
	require.Equal(t, modeCompare, m.mode)
	require.NotNil(t, m.comparison)
	assert.Contains(t, m.View().Content, "Candidate comparison")

	m, _ = press(t, m, "esc")
	assert.Equal(t, modeNormal, m.mode)
	assert.Nil(t, m.comparison)
}

func TestHelpClosesOnAnyKey(t *testing.T) {
	m, _ := newTestModel(t, mockapi.Config{})

	m, _ = press(t, m, "?")
	require.Equal(t, modeHelp, m.mode)
	assert.Contains(t, m.View().Content, "NAVIGATION")

	m, _ = press(t, m, "j")
	assert.Equal(t, modeNormal, m.mode)
	card, _ := m.current()
	assert.Equal(t, "c1", card.ID, "the closing key is swallowed")
}

func TestViewRendersColumns(t *testing.T) {
	m, _ := newTestModel(t, mockapi.Config{})

	content := m.View().Content
	assert.Contains(t, content, "New (4)")
	assert.Contains(t, content, "Screening (2)")
	assert.Contains(t, content, "Rejected (1)")
	assert.Contains(t, content, "BOARD")
}

func TestViewBeforeSizing(t *testing.T) {
	srv := mockapi.New(mockapi.Config{}, nil)
	a := app.New(srv, srv)
	t.Cleanup(func() { _ = a.Close() })

	m := New(context.Background(), a, nil)
	defer m.Close()
	assert.Equal(t, "Loading...", m.View().Content)
}

func TestTickExpiresNotifications(t *testing.T) {
	m, _ := newTestModel(t, mockapi.Config{})

	m.app.Notifications.Add(notify.LevelInfo, "hello")
	m = update(t, m, tickMsg{})
	assert.True(t, m.app.Notifications.HasAny(), "fresh banners survive a tick")
}

func TestCancelledContextQuits(t *testing.T) {
	m, _ := newTestModel(t, mockapi.Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m.ctx = ctx

	_, cmd := m.Update(keyPress("j"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
