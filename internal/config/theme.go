package config

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`

	// UI elements
	ColumnBorder   string `yaml:"column_border"`
	CardBorder     string `yaml:"card_border"`
	CardBackground string `yaml:"card_background"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`
	DragBorder     string `yaml:"drag_border"`
	DropTarget     string `yaml:"drop_target"`

	// Text
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`

	// Score badge
	ScoreHigh string `yaml:"score_high"`
	ScoreLow  string `yaml:"score_low"`

	// Notifications (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	SuccessFg string `yaml:"success_fg"`
	SuccessBg string `yaml:"success_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:     "default",
		Accent:     "#874BFD",
		Background: "#1C1C1C",

		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		CardBackground: "#262626",
		SelectedBorder: "#D75FD7",
		SelectedBg:     "#3A3A3A",
		DragBorder:     "#FFD700",
		DropTarget:     "#5FD75F",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		ScoreHigh: "#5FD75F",
		ScoreLow:  "#FFAF00",

		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		SuccessFg: "#5FFF87",
		SuccessBg: "#005F00",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF0000",
		ErrorBg:   "#5F0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:     "monochrome",
		Accent:     "#FFFFFF",
		Background: "#121212",

		ColumnBorder:   "#FFFFFF",
		CardBorder:     "#585858",
		CardBackground: "#1C1C1C",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#3A3A3A",
		DragBorder:     "#FFFFFF",
		DropTarget:     "#D0D0D0",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		ScoreHigh: "#FFFFFF",
		ScoreLow:  "#8A8A8A",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#1C1C1C",
		SuccessFg: "#FFFFFF",
		SuccessBg: "#262626",
		WarningFg: "#FFFFFF",
		WarningBg: "#3A3A3A",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#585858",
	}
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// fields lists every color slot so merge and defaulting stay in sync
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Background,
		&c.ColumnBorder, &c.CardBorder, &c.CardBackground,
		&c.SelectedBorder, &c.SelectedBg, &c.DragBorder, &c.DropTarget,
		&c.Title, &c.Subtle, &c.Normal,
		&c.ScoreHigh, &c.ScoreLow,
		&c.InfoFg, &c.InfoBg, &c.SuccessFg, &c.SuccessBg,
		&c.WarningFg, &c.WarningBg, &c.ErrorFg, &c.ErrorBg,
	}
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	dst, src := c.fields(), other.fields()
	for i := range dst {
		if *src[i] != "" {
			*dst[i] = *src[i]
		}
	}
}

// ApplyDefaults fills in missing color values from the preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	dst, src := c.fields(), preset.fields()
	for i := range dst {
		if *dst[i] == "" {
			*dst[i] = *src[i]
		}
	}
}
