package theme

import "github.com/thenoetrevino/hireboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	ColumnBorder   string
	CardBorder     string
	CardBg         string
	SelectedBorder string
	SelectedBg     string
	DragBorder     string
	DropTarget     string
	ScoreHigh      string
	ScoreLow       string
	InfoFg         string
	InfoBg         string
	SuccessFg      string
	SuccessBg      string
	WarningFg      string
	WarningBg      string
	ErrorFg        string
	ErrorBg        string
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	ColumnBorder = colors.ColumnBorder
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	DragBorder = colors.DragBorder
	DropTarget = colors.DropTarget
	ScoreHigh = colors.ScoreHigh
	ScoreLow = colors.ScoreLow
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	SuccessFg = colors.SuccessFg
	SuccessBg = colors.SuccessBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
}
