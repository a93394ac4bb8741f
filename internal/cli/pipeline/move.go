package pipeline

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/outreach"
)

// MoveCmd returns the move command
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <candidate-id> <column>",
		Short: "Move a candidate to another stage",
		Long: `Move a candidate to a column, optionally at a given rank.
The move is applied at once and rolled back if the backend rejects it.

Examples:
  # Move to the end of the interview column
  hireboard move c1 interview

  # Put a candidate at the top of screening
  hireboard move c2 screening --position 0

  # Show the invitation draft that the move opened
  hireboard move c1 interview --draft
`,
		Args: cobra.ExactArgs(2),
		RunE: runMove,
	}

	cmd.Flags().Int("position", -1, "Zero-based rank in the target column (default: end)")
	cmd.Flags().Bool("draft", false, "Print the outreach draft opened by the move")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	candidateID := args[0]
	target, err := models.ParseColumn(args[1])
	if err != nil {
		return formatter.Fail(err, columnSuggestion)
	}
	position, _ := cmd.Flags().GetInt("position")
	showDraft, _ := cmd.Flags().GetBool("draft")

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer release()

	outcome, err := cliInstance.Move(ctx, candidateID, target, position)
	if err != nil {
		return formatter.Fail(err, candidateSuggestion)
	}

	draft, drafted := cliInstance.App.Drafter.Current()

	if formatter.Quiet {
		return formatter.Success(outcome)
	}
	if formatter.JSON {
		data := map[string]any{"move": outcome}
		if drafted {
			data["draft"] = draftJSON(draft)
		}
		return formatter.JSONSuccess("data", data)
	}

	w := formatter.Writer()
	fmt.Fprintf(w, "✓ Moved %s (%s): %s → %s, position %d\n",
		outcome.Candidate.Name, outcome.Candidate.ID, outcome.From.Title(), outcome.To.Title(), outcome.Position)
	for _, n := range cliInstance.App.Notifications.Drain() {
		fmt.Fprintf(w, "  %s\n", n.Message)
	}
	if drafted {
		if showDraft {
			fmt.Fprintln(w)
			fmt.Fprintln(w, outreach.Render(outreach.Markdown(draft), outreach.DefaultRenderWidth))
		} else {
			fmt.Fprintf(w, "💡 A %s draft is ready: hireboard outreach %s\n", draft.Kind, outcome.Candidate.ID)
		}
	}
	return nil
}

func draftJSON(d outreach.Draft) map[string]any {
	return map[string]any{
		"candidate_id": d.Candidate.ID,
		"kind":         d.Kind,
		"tone":         d.Tone,
		"body":         d.Body,
	}
}
