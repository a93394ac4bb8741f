package pipeline

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/models"
)

// BulkMoveCmd returns the bulk-move command
func BulkMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bulk-move <column> <candidate-id>...",
		Short: "Move several candidates to the top of a stage",
		Long: `Move several candidates at once. They land at the head of the target
column in board order, as one request that succeeds or rolls back together.

Examples:
  hireboard bulk-move rejected c2 c10
  hireboard bulk-move screening c1 c3 --json
`,
		Args: cobra.MinimumNArgs(2),
		RunE: runBulkMove,
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runBulkMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	target, err := models.ParseColumn(args[0])
	if err != nil {
		return formatter.Fail(err, columnSuggestion)
	}
	ids := args[1:]

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer release()

	moved, err := cliInstance.BulkMove(ctx, ids, target)
	if err != nil {
		return formatter.Fail(err, candidateSuggestion)
	}

	switch {
	case formatter.Quiet:
		for _, c := range moved {
			fmt.Fprintln(formatter.Writer(), c.ID)
		}
		return nil
	case formatter.JSON:
		return formatter.JSONSuccess("data", map[string]any{
			"target":     target,
			"candidates": moved,
		})
	}

	fmt.Fprintf(formatter.Writer(), "✓ Moved %d candidates to %s\n", len(moved), target.Title())
	for _, c := range moved {
		fmt.Fprintf(formatter.Writer(), "  %s  %s\n", c.ID, c.Name)
	}
	return nil
}
