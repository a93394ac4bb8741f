package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/hireboard/internal/export"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/notify"
	"github.com/thenoetrevino/hireboard/internal/outreach"
)

func (m Model) toggleCurrent() (tea.Model, tea.Cmd) {
	if !m.app.Selection.Enabled() {
		return m, nil
	}
	if card, ok := m.current(); ok {
		m.app.Selection.Toggle(card.ID)
	}
	return m, nil
}

func (m Model) requireSelection(action string) bool {
	if m.app.Selection.Count() > 0 {
		return true
	}
	m.app.Notifications.Add(notify.LevelWarning, fmt.Sprintf("Select candidates to %s", action))
	return false
}

func (m Model) openColumnPicker() (tea.Model, tea.Cmd) {
	if !m.requireSelection("move") {
		return m, nil
	}
	m.mode = modeColumnPicker
	m.pickerIndex = 0
	return m, nil
}

func (m Model) handleColumnPicker(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keys := m.keys
	switch {
	case key.Matches(msg, keys.PrevCard), key.Matches(msg, keys.PrevColumn):
		m.pickerIndex = max(m.pickerIndex-1, 0)
	case key.Matches(msg, keys.NextCard), key.Matches(msg, keys.NextColumn):
		m.pickerIndex = min(m.pickerIndex+1, len(models.Columns)-1)
	case key.Matches(msg, keys.Confirm):
		target := models.Columns[m.pickerIndex]
		m.mode = modeNormal
		if _, ok := outreach.KindFor(target); ok {
			return m.openBulkDraft(target)
		}
		return m.bulkMove(target)
	case key.Matches(msg, keys.CancelDrag), key.Matches(msg, keys.Quit):
		m.mode = modeNormal
	}
	return m, nil
}

// openBulkDraft drafts one message per selected candidate. The move to
// target happens when the drafts are sent.
func (m Model) openBulkDraft(target models.ColumnID) (tea.Model, tea.Cmd) {
	if !m.requireSelection("contact") {
		return m, nil
	}
	kind, ok := outreach.KindFor(target)
	if !ok {
		return m.bulkMove(target)
	}
	m.bulk = &bulkDraft{
		target:     target,
		kind:       kind,
		tone:       m.app.Drafter.Tone(),
		candidates: m.app.Selection.Current(),
	}
	m.mode = modeDrawer
	return m, nil
}

func (m Model) bulkMove(target models.ColumnID) (tea.Model, tea.Cmd) {
	n := m.app.Selection.Count()
	ch, err := m.app.Selection.BulkMove(m.ctx, target)
	if err != nil {
		slog.Warn("bulk move rejected", "target", target, "error", err)
		m.app.Notifications.Add(notify.LevelError, "Bulk move failed: "+err.Error())
		return m, nil
	}
	m.app.Notifications.Add(notify.LevelInfo, fmt.Sprintf("Moving %d candidates to %s", n, target.Title()))
	m.clampCursor()
	return m, awaitMove(ch, true)
}

func (m Model) openComparison() (tea.Model, tea.Cmd) {
	if !m.requireSelection("compare") {
		return m, nil
	}
	tbl, err := export.Compare(m.app.Selection.Current())
	if err != nil {
		m.app.Notifications.Add(notify.LevelWarning, err.Error())
		return m, nil
	}
	m.comparison = &tbl
	m.mode = modeCompare
	return m, nil
}

func (m Model) handleCompareMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Export):
		path, err := m.comparison.SaveXLSX(export.DefaultXLSXName)
		if err != nil {
			slog.Error("failed to export comparison", "error", err)
			m.app.Notifications.Add(notify.LevelError, "Export failed: "+err.Error())
			return m, nil
		}
		m.app.Notifications.Add(notify.LevelSuccess, "Saved "+path)
	case key.Matches(msg, m.keys.CancelDrag), key.Matches(msg, m.keys.Compare), key.Matches(msg, m.keys.Quit):
		m.comparison = nil
		m.mode = modeNormal
	}
	return m, nil
}

func (m Model) handleDrawerMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CycleTone):
		next := nextTone(m.drawerTone())
		if m.bulk != nil {
			m.bulk.tone = next
		} else {
			m.app.Drafter.SetTone(next)
		}

	case key.Matches(msg, m.keys.Confirm):
		if m.bulk != nil {
			target := m.bulk.target
			m.bulk = nil
			m.mode = modeNormal
			return m.bulkMove(target)
		}
		if d, ok := m.app.Drafter.Current(); ok {
			m.app.Notifications.Add(notify.LevelSuccess, fmt.Sprintf("✉ %s sent to %s", capitalize(string(d.Kind)), d.Candidate.Name))
		}
		m.closeDrawer()

	case key.Matches(msg, m.keys.CloseDrawer), key.Matches(msg, m.keys.CancelDrag):
		m.closeDrawer()
	}
	return m, nil
}

func (m *Model) closeDrawer() {
	m.bulk = nil
	m.app.Drafter.Dismiss()
	m.mode = modeNormal
}

func (m Model) drawerTone() outreach.Tone {
	if m.bulk != nil {
		return m.bulk.tone
	}
	if d, ok := m.app.Drafter.Current(); ok {
		return d.Tone
	}
	return m.app.Drafter.Tone()
}

func nextTone(t outreach.Tone) outreach.Tone {
	for i, tone := range outreach.Tones {
		if tone == t {
			return outreach.Tones[(i+1)%len(outreach.Tones)]
		}
	}
	return outreach.Tones[0]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
