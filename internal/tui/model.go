// Package tui is the interactive candidate board. It drives the same App
// the CLI uses: keyboard drags go through the drag controller, selection
// actions through the selection layer, and every store change re-renders.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hireboard/internal/app"
	"github.com/thenoetrevino/hireboard/internal/collision"
	"github.com/thenoetrevino/hireboard/internal/config"
	"github.com/thenoetrevino/hireboard/internal/export"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/outreach"
	"github.com/thenoetrevino/hireboard/internal/search"
	"github.com/thenoetrevino/hireboard/internal/tui/components"
)

// notificationTTL is how long a banner stays on screen
const notificationTTL = 4 * time.Second

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
	modeColumnPicker
	modeCompare
	modeDrawer
)

func (m mode) String() string {
	switch m {
	case modeSearch:
		return "FILTER"
	case modeHelp:
		return "HELP"
	case modeColumnPicker:
		return "MOVE TO"
	case modeCompare:
		return "COMPARE"
	case modeDrawer:
		return "OUTREACH"
	default:
		return "BOARD"
	}
}

// bulkDraft is an outreach draft waiting to be sent with a bulk move
type bulkDraft struct {
	target     models.ColumnID
	kind       outreach.Kind
	tone       outreach.Tone
	candidates []models.Candidate
}

func (b bulkDraft) body() string {
	return outreach.GenerateAll(b.candidates, b.kind, b.tone)
}

// Model represents the application state for the TUI
type Model struct {
	ctx      context.Context
	app      *app.App
	keys     keyMap
	detector *collision.Detector

	width  int
	height int
	mode   mode

	// cursor, as indexes into the visible board
	col     int
	row     int
	offsets []int

	// dragOver is the droppable the grabbed card is over
	dragOver string

	query  string
	search textinput.Model

	pickerIndex int
	bulk        *bulkDraft
	comparison  *export.Table

	boardChanged <-chan struct{}
	unsubscribe  func()
}

// New creates the board model. The board is loaded by Init.
func New(ctx context.Context, a *app.App, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = "name or role"

	changed, unsubscribe := a.Store.Subscribe()

	return Model{
		ctx:          ctx,
		app:          a,
		keys:         newKeyMap(cfg.KeyMappings),
		detector:     collision.NewDetector(),
		offsets:      make([]int, len(models.Columns)),
		search:       ti,
		boardChanged: changed,
		unsubscribe:  unsubscribe,
	}
}

// Init loads the board and starts listening for changes
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadBoard(),
		m.watchDaemon(),
		waitForBoard(m.boardChanged),
		tick(),
	)
}

// Close stops the store subscription
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// visible is the board as shown, narrowed by the active filter
func (m Model) visible() models.Board {
	return search.Filter(m.app.Store.Get(), m.query)
}

// current returns the card under the cursor
func (m Model) current() (models.Candidate, bool) {
	b := m.visible()
	if m.col < 0 || m.col >= len(models.Columns) {
		return models.Candidate{}, false
	}
	cards := b[models.Columns[m.col]]
	if m.row < 0 || m.row >= len(cards) {
		return models.Candidate{}, false
	}
	return cards[m.row], true
}

func (m Model) layout() layout {
	return newLayout(m.width, m.boardHeight(), m.visible(), m.offsets)
}

// boardHeight leaves room for the status bar
func (m Model) boardHeight() int {
	return max(m.height-1, 0)
}

// clampCursor keeps the cursor on the board after the board changed
func (m *Model) clampCursor() {
	m.col = min(max(m.col, 0), len(models.Columns)-1)
	n := len(m.visible()[models.Columns[m.col]])
	m.row = min(max(m.row, 0), max(n-1, 0))
	m.scrollToCursor()
}

// scrollToCursor moves the focused column's offset so the cursor row is
// on screen
func (m *Model) scrollToCursor() {
	if m.height == 0 {
		return
	}
	per := components.VisibleCards(m.boardHeight())
	off := m.offsets[m.col]
	switch {
	case m.row < off:
		off = m.row
	case m.row >= off+per:
		off = m.row - per + 1
	}
	m.offsets[m.col] = max(off, 0)
}

// focusCard moves the cursor onto id if it is visible
func (m *Model) focusCard(id string) {
	col, row, ok := m.visible().Find(id)
	if !ok {
		return
	}
	m.col = col.Index()
	m.row = row
	m.scrollToCursor()
}
