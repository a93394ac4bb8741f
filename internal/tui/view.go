package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/outreach"
	"github.com/thenoetrevino/hireboard/internal/tui/components"
	"github.com/thenoetrevino/hireboard/internal/tui/layers"
	"github.com/thenoetrevino/hireboard/internal/tui/notifications"
	"github.com/thenoetrevino/hireboard/internal/tui/theme"
)

// maxBanners caps how many notifications are stacked at once
const maxBanners = 3

// layer depths, bottom to top
const (
	zBoard = iota
	zDrawer
	zModal
	zBanner
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	if m.width == 0 {
		view.Content = "Loading..."
		return view
	}

	stack := []*lipgloss.Layer{
		lipgloss.NewLayer(lipgloss.JoinVertical(lipgloss.Left, m.viewBoard(), m.viewStatusBar())).Z(zBoard),
	}

	if drawer := m.viewDrawer(); drawer != "" {
		stack = append(stack, layers.CreateRightLayer(drawer, m.width, 0).Z(zDrawer))
	}

	var modal string
	switch m.mode {
	case modeHelp:
		modal = m.viewHelp()
	case modeColumnPicker:
		modal = m.viewColumnPicker()
	case modeCompare:
		if m.comparison != nil {
			modal = components.RenderComparison(*m.comparison, compareCellWidth(m.width, len(m.comparison.Header)), "e export to xlsx • esc close")
		}
	}
	if layer := layers.CreateCenteredLayer(modal, m.width, m.height); layer != nil {
		stack = append(stack, layer.Z(zModal))
	}

	if banners := notifications.RenderStack(m.app.Notifications.All(), maxBanners); banners != "" {
		stack = append(stack, layers.CreateRightLayer(banners, m.width, 0).Z(zBanner))
	}

	view.Content = lipgloss.NewCanvas(stack...).Render()
	return view
}

func (m Model) viewBoard() string {
	b := m.visible()
	l := m.layout()
	sel := m.app.Selection
	selecting := sel.Enabled()
	dragging := m.dragging()
	active := m.app.Controller.TrackedID()
	source := m.app.Controller.SourceColumn()

	columns := make([]string, len(models.Columns))
	for i, col := range models.Columns {
		focused := i == m.col
		rank := make(map[string]int, len(b[col]))
		for r, c := range b[col] {
			rank[c.ID] = r
		}
		columns[i] = components.RenderColumn(components.ColumnView{
			ID:         col,
			Cards:      b[col],
			Width:      l.columnWidth,
			Height:     l.columnHeight,
			Offset:     l.offset(i),
			Focused:    focused,
			DropTarget: dragging && focused && col != source,
			State: func(c models.Candidate) components.CardState {
				return components.CardState{
					Cursor:     focused && !dragging && rank[c.ID] == m.row,
					Selecting:  selecting,
					Checked:    selecting && sel.IsSelected(c.ID),
					Dragging:   dragging && c.ID == active,
					DropTarget: dragging && c.ID == m.dragOver && c.ID != active,
				}
			},
		})
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) viewStatusBar() string {
	label := m.mode.String()
	var detail string

	switch {
	case m.mode == modeSearch:
		detail = m.search.View()
	case m.dragging():
		label = "DRAG"
		if card, ok := m.app.Controller.Active(); ok {
			detail = fmt.Sprintf("moving %s • space drop • esc cancel", card.Name)
		}
	case m.app.Selection.Enabled():
		label = "SELECT"
		detail = fmt.Sprintf("%d selected", m.app.Selection.Count())
	case m.query != "":
		detail = fmt.Sprintf("filter: %q (esc clears)", m.query)
	}

	right := fmt.Sprintf("%d candidates • ? help", m.app.Store.Get().Count())
	return components.RenderStatusBar(components.StatusBarView{
		Mode:   label,
		Detail: detail,
		Right:  right,
		Width:  m.width,
	})
}

func (m Model) viewDrawer() string {
	if m.mode != modeDrawer {
		return ""
	}
	width := layers.DrawerWidth(m.width)
	hints := "t tone • enter send • d close"

	if m.bulk != nil {
		return components.RenderDrawer(components.DrawerView{
			Title:    fmt.Sprintf("%s for %d candidates", capitalize(string(m.bulk.kind)), len(m.bulk.candidates)),
			Subtitle: fmt.Sprintf("tone: %s • moves to %s on send", m.bulk.tone, m.bulk.target.Title()),
			Body:     m.bulk.body(),
			Hints:    hints,
			Width:    width,
			Height:   m.boardHeight(),
		})
	}

	d, ok := m.app.Drafter.Current()
	if !ok {
		return ""
	}
	return components.RenderDrawer(components.DrawerView{
		Title:    fmt.Sprintf("%s: %s", capitalize(string(d.Kind)), d.Candidate.Name),
		Subtitle: fmt.Sprintf("%s • tone: %s", d.Candidate.Role, d.Tone),
		Body:     d.Body,
		Hints:    hints,
		Width:    width,
		Height:   m.boardHeight(),
	})
}

func (m Model) viewColumnPicker() string {
	n := m.app.Selection.Count()
	lines := []string{components.TitleStyle.Render(fmt.Sprintf("Move %d candidates to", n)), ""}
	for i, col := range models.Columns {
		line := "  " + col.Title()
		if _, ok := outreach.KindFor(col); ok {
			line += components.SubtleStyle.Render(" (drafts outreach)")
		}
		if i == m.pickerIndex {
			line = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Highlight)).Render("> " + col.Title())
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", components.SubtleStyle.Render("enter move • esc cancel"))
	return components.ModalStyle.Width(layers.ModalMinWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) viewHelp() string {
	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("HIREBOARD - Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, section := range m.keys.helpSections() {
		b.WriteString("\n" + components.TitleStyle.Render(section.title) + "\n")
		for _, binding := range section.bindings {
			h := binding.Help()
			fmt.Fprintf(&b, "  %-8s %s\n", h.Key, h.Desc)
		}
	}
	b.WriteString("\n" + components.SubtleStyle.Render("press any key to close"))
	return components.ModalStyle.Width(layers.ModalWidth(m.width)).Render(b.String())
}

// compareCellWidth splits the screen between the candidate columns of a
// comparison
func compareCellWidth(screenWidth, columns int) int {
	if columns <= 1 {
		return 24
	}
	return min(max((screenWidth-20)/(columns-1)-3, 12), 32)
}
