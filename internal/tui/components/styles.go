// Package components renders the pieces of the candidate board.
// Call InitStyles after changing the theme.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hireboard/internal/tui/theme"
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of pipeline columns
	ColumnStyle lipgloss.Style

	// CardStyle defines the appearance of candidate cards
	CardStyle lipgloss.Style

	// TitleStyle is the column header
	TitleStyle lipgloss.Style

	SubtleStyle lipgloss.Style
	NameStyle   lipgloss.Style

	HighScoreStyle lipgloss.Style
	LowScoreStyle  lipgloss.Style

	// StatusBarStyle is the bottom line of the board
	StatusBarStyle lipgloss.Style
	ModeStyle      lipgloss.Style

	// ModalStyle frames centered overlays
	ModalStyle lipgloss.Style

	// DrawerStyle frames the outreach drawer
	DrawerStyle lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles rebuilds every style from the current theme colors
func InitStyles() {
	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		Padding(0, 1, 1, 1)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.CardBorder)).
		Background(lipgloss.Color(theme.CardBg))

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	NameStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal))

	HighScoreStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.ScoreHigh))

	LowScoreStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ScoreLow))

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	ModeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Background)).
		Background(lipgloss.Color(theme.Highlight)).
		Padding(0, 1)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	DrawerStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.SelectedBorder)).
		Padding(0, 1)
}
