package notifications

import (
	"github.com/thenoetrevino/hireboard/internal/notify"
	"github.com/thenoetrevino/hireboard/internal/tui/theme"
)

type style struct {
	icon             string
	title            string
	foreground       string
	background       string
	borderForeground string
}

func styleFor(level notify.Level) style {
	switch level {
	case notify.LevelSuccess:
		return style{
			icon:             "✓",
			title:            "Success",
			foreground:       theme.SuccessFg,
			background:       theme.SuccessBg,
			borderForeground: theme.SuccessBg,
		}
	case notify.LevelWarning:
		return style{
			icon:             "⚠",
			title:            "Warning",
			foreground:       theme.WarningFg,
			background:       theme.WarningBg,
			borderForeground: theme.WarningBg,
		}
	case notify.LevelError:
		return style{
			icon:             "✕",
			title:            "Error",
			foreground:       theme.ErrorFg,
			background:       theme.ErrorBg,
			borderForeground: theme.ErrorBg,
		}
	default:
		return style{
			icon:             "🔔",
			title:            "Info",
			foreground:       theme.InfoFg,
			background:       theme.InfoBg,
			borderForeground: theme.InfoBg,
		}
	}
}
