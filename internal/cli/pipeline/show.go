package pipeline

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/cli/styles"
	"github.com/thenoetrevino/hireboard/internal/models"
)

// ShowCmd returns the show command
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <candidate-id>",
		Short: "Show one candidate's card",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

type shownCandidate struct {
	models.Candidate
	Column models.ColumnID `json:"column"`
	Rank   int             `json:"rank"`
}

func (s shownCandidate) GetID() string { return s.ID }

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer release()

	b, err := cliInstance.Board(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	col, idx, ok := b.Find(args[0])
	if !ok {
		return formatter.Fail(fmt.Errorf("%w: %s", models.ErrCandidateNotFound, args[0]), candidateSuggestion)
	}
	shown := shownCandidate{Candidate: b[col][idx], Column: col, Rank: idx}

	if formatter.Quiet || formatter.JSON {
		if formatter.JSON {
			return formatter.JSONSuccess("candidate", shown)
		}
		return formatter.Success(shown)
	}

	fmt.Fprintln(formatter.Writer(), styles.CandidateCard(shown.Candidate, col))
	return nil
}
