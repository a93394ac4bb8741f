// Package notifications renders notify messages as banners for the board
package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hireboard/internal/notify"
)

// Render renders a notification banner based on severity level
func Render(n notify.Notification) string {
	style := styleFor(n.Level)

	headerText := style.icon + " " + style.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(n.Message))

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(maxWidth)

	header := headerStyle.Render(headerText)

	messageContent := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Width(maxWidth).
		Render(n.Message)

	content := lipgloss.JoinVertical(lipgloss.Left, header, messageContent)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderStack renders the newest notifications top to bottom, at most limit
func RenderStack(ns []notify.Notification, limit int) string {
	if len(ns) == 0 {
		return ""
	}
	if limit > 0 && len(ns) > limit {
		ns = ns[len(ns)-limit:]
	}
	banners := make([]string, 0, len(ns))
	for i := len(ns) - 1; i >= 0; i-- {
		banners = append(banners, Render(ns[i]))
	}
	return lipgloss.JoinVertical(lipgloss.Right, banners...)
}
