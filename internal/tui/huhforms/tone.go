package huhforms

import (
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/hireboard/internal/outreach"
)

// ToneOptions returns one option per outreach tone
func ToneOptions() []huh.Option[outreach.Tone] {
	opts := make([]huh.Option[outreach.Tone], 0, len(outreach.Tones))
	for _, tone := range outreach.Tones {
		name := string(tone)
		opts = append(opts, huh.NewOption(strings.ToUpper(name[:1])+name[1:], tone))
	}
	return opts
}

// CreateToneForm asks which tone an outreach draft should use
func CreateToneForm(tone *outreach.Tone, kind outreach.Kind, recipients int) *huh.Form {
	title := "Tone for " + string(kind) + " draft"
	if recipients > 1 {
		title += "s"
	}

	fields := []huh.Field{
		huh.NewSelect[outreach.Tone]().
			Key("tone").
			Title(title).
			Options(ToneOptions()...).
			Value(tone),
	}

	return huh.NewForm(huh.NewGroup(fields...))
}
