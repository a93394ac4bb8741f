package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/hireboard/internal/export"
	"github.com/thenoetrevino/hireboard/internal/models"
)

var alice = models.Candidate{ID: "c1", Name: "Alice Johnson", Role: "Frontend Dev", Score: 85}

func TestRenderCard(t *testing.T) {
	out := RenderCard(alice, 24, CardState{})

	assert.Equal(t, CardHeight, lipgloss.Height(out))
	assert.Equal(t, 24, lipgloss.Width(out))
	assert.Contains(t, out, "Alice Johnson")
	assert.Contains(t, out, "85")
	assert.NotContains(t, out, "[ ]")
}

func TestRenderCard_Checkbox(t *testing.T) {
	assert.Contains(t, RenderCard(alice, 30, CardState{Selecting: true}), "[ ] Alice")
	assert.Contains(t, RenderCard(alice, 30, CardState{Selecting: true, Checked: true}), "[x] Alice")
}

func TestRenderCard_TruncatesLongNames(t *testing.T) {
	c := alice
	c.Name = "Alexandria Ocasio-Montgomery-Smythe"

	out := RenderCard(c, 16, CardState{})
	assert.Equal(t, 16, lipgloss.Width(out))
	assert.Contains(t, out, "…")
}

func TestVisibleCards(t *testing.T) {
	assert.Equal(t, 1, VisibleCards(0))
	assert.Equal(t, 6, VisibleCards(30))
	assert.Equal(t, 20, CardWidth(24))
	assert.Equal(t, 6, CardWidth(5))
}

func TestRenderColumn(t *testing.T) {
	out := RenderColumn(ColumnView{
		ID:     models.ColumnNew,
		Cards:  []models.Candidate{alice},
		Width:  24,
		Height: 20,
	})
	assert.Contains(t, out, "New (1)")
	assert.Contains(t, out, "Alice Johnson")
	assert.Equal(t, 20, lipgloss.Height(out))
	assert.NotContains(t, out, "more below")
}

func TestRenderColumn_Empty(t *testing.T) {
	out := RenderColumn(ColumnView{ID: models.ColumnOffer, Width: 24, Height: 12})
	assert.Contains(t, out, "Offer (0)")
	assert.Contains(t, out, "No candidates")
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	cards := make([]models.Candidate, 5)
	for i := range cards {
		cards[i] = alice
	}

	out := RenderColumn(ColumnView{ID: models.ColumnNew, Cards: cards, Width: 24, Height: 14, Offset: 1})
	assert.Contains(t, out, "▲ more above")
	assert.Contains(t, out, "▼ more below")
	assert.Equal(t, 2, strings.Count(out, "Alice Johnson"))
}

func TestRenderDrawer(t *testing.T) {
	out := RenderDrawer(DrawerView{
		Title:    "Invitation: Alice Johnson",
		Subtitle: "professional",
		Body:     strings.Repeat("word ", 200),
		Hints:    "d close",
		Width:    40,
		Height:   20,
	})
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Equal(t, 20, lipgloss.Height(out))
	assert.Contains(t, out, "…")
	assert.Contains(t, out, "d close")
}

func TestRenderComparison(t *testing.T) {
	out := RenderComparison(export.Table{
		Header: []string{"", "Alice Johnson", "Bob Smith"},
		Rows:   [][]string{{"Score", "85", "72"}},
	}, 16, "esc close")
	assert.Contains(t, out, "Candidate comparison")
	assert.Contains(t, out, "Bob Smith")
	assert.Contains(t, out, "Score")
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarView{Mode: "BOARD", Detail: "2 selected", Right: "? help", Width: 60})
	assert.Equal(t, 60, lipgloss.Width(out))
	assert.Contains(t, out, "? help")

	narrow := RenderStatusBar(StatusBarView{Mode: "BOARD", Detail: "a long detail message", Right: "? help", Width: 12})
	assert.LessOrEqual(t, lipgloss.Width(narrow), 12)
}
