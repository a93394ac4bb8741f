package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/truncate"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/tui/theme"
)

// CardHeight is the fixed height of a rendered card, borders included
const CardHeight = 4

// CardState is how a card is highlighted on this frame
type CardState struct {
	Cursor     bool
	Selecting  bool // selection mode is on, show a checkbox
	Checked    bool
	Dragging   bool
	DropTarget bool
}

// RenderCard renders a candidate as a two-line card
//
//	╭──────────────────╮
//	│ [x] Alice Johnson│
//	│ Frontend Dev  85 │
//	╰──────────────────╯
func RenderCard(c models.Candidate, width int, st CardState) string {
	inner := max(width-2, 4)

	bg := theme.CardBg
	if st.Cursor || st.Dragging {
		bg = theme.SelectedBg
	}

	name := c.Name
	if st.Selecting {
		box := "[ ] "
		if st.Checked {
			box = "[x] "
		}
		name = box + name
	}
	name = NameStyle.Background(lipgloss.Color(bg)).Render(truncate.StringWithTail(name, uint(inner), "…"))

	score := fmt.Sprintf("%3d", c.Score)
	roleWidth := max(inner-lipgloss.Width(score)-1, 1)
	role := truncate.StringWithTail(c.Role, uint(roleWidth), "…")
	padding := max(inner-lipgloss.Width(role)-lipgloss.Width(score), 1)
	meta := SubtleStyle.Background(lipgloss.Color(bg)).Render(role+strings.Repeat(" ", padding)) + ScoreStyle(c).Background(lipgloss.Color(bg)).Render(score)

	border := theme.CardBorder
	switch {
	case st.Dragging:
		border = theme.DragBorder
	case st.DropTarget:
		border = theme.DropTarget
	case st.Cursor:
		border = theme.SelectedBorder
	}

	return CardStyle.
		Width(width).
		BorderForeground(lipgloss.Color(border)).
		Background(lipgloss.Color(bg)).
		Render(name + "\n" + meta)
}

// ScoreStyle colors a score badge by match strength
func ScoreStyle(c models.Candidate) lipgloss.Style {
	if c.StrongMatch() {
		return HighScoreStyle
	}
	return LowScoreStyle
}
