package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// DrawerView is the outreach drawer's content
type DrawerView struct {
	Title    string
	Subtitle string
	Body     string
	Hints    string
	Width    int
	Height   int
}

// RenderDrawer renders a bordered side panel with a wrapped body. Lines
// that do not fit the height are cut and marked.
func RenderDrawer(v DrawerView) string {
	inner := max(v.Width-4, 10)

	lines := []string{TitleStyle.Render(v.Title)}
	if v.Subtitle != "" {
		lines = append(lines, SubtleStyle.Italic(true).Render(v.Subtitle))
	}
	lines = append(lines, "")

	body := strings.Split(wordwrap.String(v.Body, inner), "\n")
	room := v.Height - len(lines) - 4
	if v.Height > 0 && room > 0 && len(body) > room {
		body = append(body[:room-1], SubtleStyle.Render("…"))
	}
	lines = append(lines, body...)

	if v.Hints != "" {
		lines = append(lines, "", SubtleStyle.Render(v.Hints))
	}

	style := DrawerStyle.Width(v.Width)
	if v.Height > 0 {
		style = style.Height(v.Height)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
