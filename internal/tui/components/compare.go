package components

import (
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/hireboard/internal/export"
	"github.com/thenoetrevino/hireboard/internal/tui/theme"
)

// RenderComparison renders a comparison table inside a modal frame.
// cellWidth bounds each candidate column.
func RenderComparison(t export.Table, cellWidth int, hints string) string {
	label := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Normal))

	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(SubtleStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TitleStyle.Padding(0, 1)
			case col == 0:
				return label.Padding(0, 1)
			default:
				return value.Padding(0, 1).Width(cellWidth)
			}
		}).
		Headers(t.Header...).
		Rows(t.Rows...)

	content := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("Candidate comparison"),
		"",
		tbl.String(),
		"",
		SubtleStyle.Render(hints),
	)
	return ModalStyle.Render(content)
}
