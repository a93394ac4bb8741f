package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarView is the bottom line of the board
type StatusBarView struct {
	Mode   string
	Detail string
	Right  string
	Width  int
}

// RenderStatusBar renders the mode badge, a detail message and right
// aligned hints on one line
func RenderStatusBar(v StatusBarView) string {
	left := ModeStyle.Render(v.Mode)
	if v.Detail != "" {
		left += " " + StatusBarStyle.Render(v.Detail)
	}
	right := StatusBarStyle.Render(v.Right)

	gap := v.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return lipgloss.NewStyle().MaxWidth(v.Width).Render(left)
	}
	return left + strings.Repeat(" ", gap) + right
}
