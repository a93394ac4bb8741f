package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/tui/theme"
)

// Column chrome, in rows and cells
const (
	// ColumnHeaderRows is the border, header line and scroll indicator above
	// the first card
	ColumnHeaderRows = 3
	// ColumnFooterRows is the scroll indicator, padding and border below
	// the last card
	ColumnFooterRows = 3
	// ColumnInset is the border and padding left of a card
	ColumnInset = 2
)

// ColumnView is everything needed to draw one column
type ColumnView struct {
	ID     models.ColumnID
	Cards  []models.Candidate
	Width  int
	Height int
	// Offset is the index of the first visible card
	Offset  int
	Focused bool
	// DropTarget highlights the column as the drag destination
	DropTarget bool
	State      func(c models.Candidate) CardState
}

// VisibleCards is how many cards fit in a column of the given height
func VisibleCards(height int) int {
	return max((height-ColumnHeaderRows-ColumnFooterRows)/CardHeight, 1)
}

// CardWidth is the width of a card inside a column of the given width
func CardWidth(columnWidth int) int {
	return max(columnWidth-2*ColumnInset, 6)
}

// RenderColumn renders a column header and its visible cards
//
//	Screening (2)
//	▲ (if scrolled down)
//	{card}
//	{card}
//	▼ (if more cards below)
func RenderColumn(v ColumnView) string {
	header := TitleStyle.Render(fmt.Sprintf("%s (%d)", v.ID.Title(), len(v.Cards)))
	lines := []string{header}

	indicator := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
	if v.Offset > 0 {
		lines = append(lines, indicator.Render("▲ more above"))
	} else {
		lines = append(lines, "")
	}

	cardWidth := CardWidth(v.Width)
	if len(v.Cards) == 0 {
		lines = append(lines, SubtleStyle.Italic(true).Render("No candidates"))
	}

	end := min(v.Offset+VisibleCards(v.Height), len(v.Cards))
	for i := v.Offset; i < end; i++ {
		var st CardState
		if v.State != nil {
			st = v.State(v.Cards[i])
		}
		lines = append(lines, RenderCard(v.Cards[i], cardWidth, st))
	}

	content := strings.Join(lines, "\n")
	if end < len(v.Cards) {
		content += "\n" + indicator.Render("▼ more below")
	}

	style := ColumnStyle.Width(v.Width)
	switch {
	case v.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case v.Focused:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if v.Height > 0 {
		style = style.Height(v.Height)
	}
	return style.Render(content)
}
