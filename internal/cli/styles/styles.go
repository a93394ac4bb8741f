package styles

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/hireboard/internal/config"
	"github.com/thenoetrevino/hireboard/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 72

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Role:", "Email:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For column headers

	// Score badges
	HighScoreStyle lipgloss.Style
	LowScoreStyle  lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
	WarningStyle lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(colors config.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(0, 1).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Accent)).
		Bold(true).
		MarginTop(1)

	HighScoreStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ScoreHigh))

	LowScoreStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.ScoreLow))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.SuccessFg)).
		Background(lipgloss.Color(colors.SuccessBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.ErrorFg)).
		Background(lipgloss.Color(colors.ErrorBg)).
		Padding(0, 1)

	WarningStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.WarningFg)).
		Background(lipgloss.Color(colors.WarningBg)).
		Padding(0, 1)
}

// Score renders a match score badge
func Score(score int) string {
	text := fmt.Sprintf("%3d", score)
	if score >= models.HighScore {
		return HighScoreStyle.Render(text)
	}
	return LowScoreStyle.Render(text)
}

// ColumnHeader renders a column title with its card count
func ColumnHeader(col models.ColumnID, count int) string {
	return SectionStyle.Render(fmt.Sprintf("%s (%d)", col.Title(), count))
}

// CandidateLine renders one candidate as a single line
func CandidateLine(c models.Candidate) string {
	return fmt.Sprintf("  %s  %s  %s %s",
		Score(c.Score),
		ValueStyle.Render(c.ID),
		TitleStyle.Render(c.Name),
		SubtitleStyle.Render("· "+c.Role))
}

// CandidateCard renders the full detail card for one candidate
func CandidateCard(c models.Candidate, col models.ColumnID) string {
	field := func(label, value string) string {
		return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(c.Name)+"  "+Score(c.Score),
		SubtitleStyle.Render(c.ID),
		"",
		field("Role", c.Role),
		field("Stage", col.Title()),
		field("Email", c.Email),
		field("Applied", c.AppliedDate),
		"",
		ValueStyle.Render(c.MatchSummary),
	)
	return CardStyle.Render(body)
}
