package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/hireboard/internal/config"
)

// keyMap holds the board's bindings, built from the user's key mappings
type keyMap struct {
	PrevColumn key.Binding
	NextColumn key.Binding
	PrevCard   key.Binding
	NextCard   key.Binding

	Grab       key.Binding
	CancelDrag key.Binding

	ToggleSelectMode key.Binding
	ToggleSelect     key.Binding
	SelectAll        key.Binding
	BulkMove         key.Binding
	Compare          key.Binding

	CycleTone    key.Binding
	CloseDrawer  key.Binding
	BulkOutreach key.Binding
	Confirm      key.Binding
	Export       key.Binding

	Search    key.Binding
	Refresh   key.Binding
	ShowHelp  key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

func newKeyMap(k config.KeyMappings) keyMap {
	return keyMap{
		PrevColumn: key.NewBinding(key.WithKeys(k.PrevColumn, "left"), key.WithHelp(k.PrevColumn, "previous column")),
		NextColumn: key.NewBinding(key.WithKeys(k.NextColumn, "right"), key.WithHelp(k.NextColumn, "next column")),
		PrevCard:   key.NewBinding(key.WithKeys(k.PrevCard, "up"), key.WithHelp(k.PrevCard, "previous card")),
		NextCard:   key.NewBinding(key.WithKeys(k.NextCard, "down"), key.WithHelp(k.NextCard, "next card")),

		Grab:       key.NewBinding(key.WithKeys(k.Grab), key.WithHelp(k.Grab, "grab / drop card")),
		CancelDrag: key.NewBinding(key.WithKeys(k.CancelDrag), key.WithHelp(k.CancelDrag, "cancel / close")),

		ToggleSelectMode: key.NewBinding(key.WithKeys(k.ToggleSelectMode), key.WithHelp(k.ToggleSelectMode, "selection mode")),
		ToggleSelect:     key.NewBinding(key.WithKeys(k.ToggleSelect), key.WithHelp(k.ToggleSelect, "select card")),
		SelectAll:        key.NewBinding(key.WithKeys(k.SelectAll), key.WithHelp(k.SelectAll, "select all / none")),
		BulkMove:         key.NewBinding(key.WithKeys(k.BulkMove), key.WithHelp(k.BulkMove, "move selected")),
		Compare:          key.NewBinding(key.WithKeys(k.Compare), key.WithHelp(k.Compare, "compare selected")),

		CycleTone:    key.NewBinding(key.WithKeys(k.CycleTone), key.WithHelp(k.CycleTone, "cycle tone")),
		CloseDrawer:  key.NewBinding(key.WithKeys(k.CloseDrawer), key.WithHelp(k.CloseDrawer, "close drawer")),
		BulkOutreach: key.NewBinding(key.WithKeys(k.BulkOutreach), key.WithHelp(k.BulkOutreach, "reject selected with outreach")),
		Confirm:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Export:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export to xlsx")),

		Search:    key.NewBinding(key.WithKeys(k.Search), key.WithHelp(k.Search, "filter")),
		Refresh:   key.NewBinding(key.WithKeys(k.Refresh), key.WithHelp(k.Refresh, "refresh")),
		ShowHelp:  key.NewBinding(key.WithKeys(k.ShowHelp), key.WithHelp(k.ShowHelp, "help")),
		Quit:      key.NewBinding(key.WithKeys(k.Quit), key.WithHelp(k.Quit, "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// helpSections groups bindings for the help overlay
func (k keyMap) helpSections() []helpSection {
	return []helpSection{
		{"NAVIGATION", []key.Binding{k.PrevColumn, k.NextColumn, k.PrevCard, k.NextCard}},
		{"DRAGGING", []key.Binding{k.Grab, k.CancelDrag}},
		{"SELECTION", []key.Binding{k.ToggleSelectMode, k.ToggleSelect, k.SelectAll, k.BulkMove, k.BulkOutreach, k.Compare}},
		{"OUTREACH", []key.Binding{k.CycleTone, k.Confirm, k.CloseDrawer}},
		{"OTHER", []key.Binding{k.Search, k.Refresh, k.ShowHelp, k.Quit}},
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
