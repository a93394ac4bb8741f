package pipeline

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/outreach"
	"github.com/thenoetrevino/hireboard/internal/tui/huhforms"
)

// OutreachCmd returns the outreach command
func OutreachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outreach <candidate-id>...",
		Short: "Draft rejection or invitation messages",
		Long: `Draft outreach messages from templates. The kind follows the
candidate's stage (rejected: rejection, interview: invitation) unless
--kind is given. Several candidates produce one bulk document.

Examples:
  hireboard outreach c8
  hireboard outreach c1 --kind invitation --tone friendly
  hireboard outreach c2 c10 --kind rejection --raw
  hireboard outreach c6 --interactive
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runOutreach,
	}

	cmd.Flags().String("kind", "", "Draft kind: rejection or invitation")
	cmd.Flags().String("tone", "", "Tone: professional, friendly or brief (default from config)")
	cmd.Flags().BoolP("interactive", "i", false, "Pick the tone from a menu")
	cmd.Flags().Bool("raw", false, "Print plain text instead of rendered markdown")
	cmd.Flags().Int("width", outreach.DefaultRenderWidth, "Wrap width for rendered output")
	cli.AddOutputFlags(cmd)

	return cmd
}

func parseKind(name string) (outreach.Kind, error) {
	switch outreach.Kind(name) {
	case outreach.KindRejection, outreach.KindInvitation:
		return outreach.Kind(name), nil
	}
	return "", fmt.Errorf("%w: unknown kind %q (use rejection or invitation)", cli.ErrUsage, name)
}

func runOutreach(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	kindName, _ := cmd.Flags().GetString("kind")
	toneName, _ := cmd.Flags().GetString("tone")
	interactive, _ := cmd.Flags().GetBool("interactive")
	raw, _ := cmd.Flags().GetBool("raw")
	width, _ := cmd.Flags().GetInt("width")

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer release()

	tone := cliInstance.App.Drafter.Tone()
	if toneName != "" {
		if tone, err = outreach.ParseTone(toneName); err != nil {
			return formatter.Fail(err, "Valid tones are: professional, friendly, brief")
		}
	}

	b, err := cliInstance.Board(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	candidates, err := cliInstance.Lookup(ctx, args)
	if err != nil {
		return formatter.Fail(err, candidateSuggestion)
	}

	var kind outreach.Kind
	if kindName != "" {
		if kind, err = parseKind(kindName); err != nil {
			return formatter.Fail(err, "")
		}
	} else {
		if kind, err = kindFromStage(b, candidates); err != nil {
			return formatter.Fail(err, "Pass --kind rejection or --kind invitation")
		}
	}

	if interactive {
		form := huhforms.CreateToneForm(&tone, kind, len(candidates)).
			WithTheme(huhforms.CreateHireboardTheme(cliInstance.Config.ColorScheme))
		if err := form.Run(); err != nil {
			return formatter.Fail(fmt.Errorf("tone picker: %w", err), "")
		}
	}

	var drafts []outreach.Draft
	for _, c := range candidates {
		drafts = append(drafts, outreach.Draft{Candidate: c, Kind: kind, Tone: tone, Body: outreach.Generate(c, kind, tone)})
	}

	w := formatter.Writer()
	switch {
	case formatter.Quiet:
		for _, d := range drafts {
			fmt.Fprintln(w, d.Candidate.ID)
		}
		return nil
	case formatter.JSON:
		out := make([]map[string]any, len(drafts))
		for i, d := range drafts {
			out[i] = draftJSON(d)
		}
		return formatter.JSONSuccess("drafts", out)
	}

	if len(drafts) > 1 {
		text := outreach.GenerateAll(candidates, kind, tone)
		if raw {
			fmt.Fprintln(w, text)
			return nil
		}
		fmt.Fprintln(w, outreach.Render(outreach.BulkMarkdown(text), width))
		return nil
	}

	if raw {
		fmt.Fprintln(w, drafts[0].Body)
		return nil
	}
	fmt.Fprintln(w, outreach.Render(outreach.Markdown(drafts[0]), width))
	return nil
}

// kindFromStage picks the draft kind every candidate's column implies
func kindFromStage(b models.Board, cs []models.Candidate) (outreach.Kind, error) {
	var kind outreach.Kind
	for _, c := range cs {
		col, _, _ := b.Find(c.ID)
		k, ok := outreach.KindFor(col)
		if !ok {
			return "", fmt.Errorf("%w: %s is in %s, which has no outreach template", cli.ErrUsage, c.ID, col.Title())
		}
		if kind != "" && k != kind {
			return "", fmt.Errorf("%w: candidates need different kinds of outreach", cli.ErrUsage)
		}
		kind = k
	}
	return kind, nil
}
