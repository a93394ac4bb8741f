package pipeline

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/models"
)

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [candidate-id]",
		Short: "Show recorded moves",
		Long: `Show recorded moves, newest first. With a candidate id only that
candidate's moves are listed.

Examples:
  hireboard history
  hireboard history c1 --limit 5
`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistory,
	}
	cmd.Flags().Int("limit", 20, "Maximum number of moves (0 for all)")
	cli.AddOutputFlags(cmd)
	return cmd
}

type historyEntry struct {
	ID          string          `json:"id"`
	CandidateID string          `json:"candidate_id"`
	FromColumn  models.ColumnID `json:"from"`
	ToColumn    models.ColumnID `json:"to"`
	Position    int             `json:"position"`
	MovedBy     string          `json:"moved_by,omitempty"`
	MovedAt     time.Time       `json:"moved_at"`
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	limit, _ := cmd.Flags().GetInt("limit")

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer release()

	var records []models.MoveRecord
	if len(args) == 1 {
		records, err = cliInstance.History.ForCandidate(ctx, args[0], limit)
	} else {
		records, err = cliInstance.History.Recent(ctx, limit)
	}
	if err != nil {
		return formatter.Fail(fmt.Errorf("failed to read history: %w", err), "")
	}

	entries := make([]historyEntry, len(records))
	for i, r := range records {
		entries[i] = historyEntry(r)
	}

	w := formatter.Writer()
	switch {
	case formatter.Quiet:
		for _, e := range entries {
			fmt.Fprintln(w, e.ID)
		}
		return nil
	case formatter.JSON:
		return formatter.JSONSuccess("moves", entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No moves recorded")
		return nil
	}
	for _, e := range entries {
		from := "-"
		if e.FromColumn != "" {
			from = e.FromColumn.Title()
		}
		fmt.Fprintf(w, "%s  %-4s %s → %s (position %d)",
			e.MovedAt.Local().Format(time.DateTime), e.CandidateID, from, e.ToColumn.Title(), e.Position)
		if e.MovedBy != "" {
			fmt.Fprintf(w, " by %s", e.MovedBy)
		}
		fmt.Fprintln(w)
	}
	return nil
}
