package pipeline

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/cli/styles"
	"github.com/thenoetrevino/hireboard/internal/models"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the candidate pipeline",
		Long: `Show every pipeline column with its candidates in rank order.

Examples:
  # Whole board
  hireboard board

  # One column, ids only
  hireboard board --column interview --quiet

  # JSON output for agents
  hireboard board --json
`,
		Args: cobra.NoArgs,
		RunE: runBoard,
	}

	cmd.Flags().String("column", "", "Only show this column (new, screening, interview, offer, rejected)")
	cli.AddOutputFlags(cmd)

	return cmd
}

type boardColumn struct {
	ID         models.ColumnID    `json:"id"`
	Title      string             `json:"title"`
	Candidates []models.Candidate `json:"candidates"`
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	columns := models.Columns
	if name, _ := cmd.Flags().GetString("column"); name != "" {
		col, err := models.ParseColumn(name)
		if err != nil {
			return formatter.Fail(err, columnSuggestion)
		}
		columns = []models.ColumnID{col}
	}

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer release()

	b, err := cliInstance.Board(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	out := make([]boardColumn, 0, len(columns))
	for _, col := range columns {
		out = append(out, boardColumn{ID: col, Title: col.Title(), Candidates: b[col]})
	}

	switch {
	case formatter.Quiet:
		for _, col := range out {
			for _, c := range col.Candidates {
				fmt.Fprintln(formatter.Writer(), c.ID)
			}
		}
		return nil
	case formatter.JSON:
		return formatter.JSONSuccess("columns", out)
	}

	renderColumns(formatter.Writer(), out)
	return nil
}

func renderColumns(w io.Writer, columns []boardColumn) {
	for _, col := range columns {
		fmt.Fprintln(w, styles.ColumnHeader(col.ID, len(col.Candidates)))
		if len(col.Candidates) == 0 {
			fmt.Fprintln(w, styles.SubtitleStyle.Render("  (empty)"))
			continue
		}
		for _, c := range col.Candidates {
			fmt.Fprintln(w, styles.CandidateLine(c))
		}
	}
}
