package config

// KeyMappings defines all configurable board key bindings
type KeyMappings struct {
	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Dragging
	Grab       string `yaml:"grab"`
	CancelDrag string `yaml:"cancel_drag"`

	// Selection
	ToggleSelectMode string `yaml:"toggle_select_mode"`
	ToggleSelect     string `yaml:"toggle_select"`
	SelectAll        string `yaml:"select_all"`
	BulkMove         string `yaml:"bulk_move"`
	Compare          string `yaml:"compare"`

	// Outreach drawer
	CycleTone    string `yaml:"cycle_tone"`
	CloseDrawer  string `yaml:"close_drawer"`
	BulkOutreach string `yaml:"bulk_outreach"`

	// Other
	Search   string `yaml:"search"`
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		Grab:       "space",
		CancelDrag: "esc",

		ToggleSelectMode: "v",
		ToggleSelect:     "x",
		SelectAll:        "A",
		BulkMove:         "m",
		Compare:          "c",

		CycleTone:    "t",
		CloseDrawer:  "d",
		BulkOutreach: "o",

		Search:   "/",
		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevCard, defaults.PrevCard)
	fill(&k.NextCard, defaults.NextCard)
	fill(&k.Grab, defaults.Grab)
	fill(&k.CancelDrag, defaults.CancelDrag)
	fill(&k.ToggleSelectMode, defaults.ToggleSelectMode)
	fill(&k.ToggleSelect, defaults.ToggleSelect)
	fill(&k.SelectAll, defaults.SelectAll)
	fill(&k.BulkMove, defaults.BulkMove)
	fill(&k.Compare, defaults.Compare)
	fill(&k.CycleTone, defaults.CycleTone)
	fill(&k.CloseDrawer, defaults.CloseDrawer)
	fill(&k.BulkOutreach, defaults.BulkOutreach)
	fill(&k.Search, defaults.Search)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
