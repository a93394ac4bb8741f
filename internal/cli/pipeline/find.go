package pipeline

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/cli/styles"
	"github.com/thenoetrevino/hireboard/internal/search"
)

// FindCmd returns the find command
func FindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <query>",
		Short: "Fuzzy-search candidates by name or role",
		Long: `Fuzzy-search candidates by name or role, best match first.

Examples:
  hireboard find alice
  hireboard find "backend dev" --limit 3
  hireboard find fiona --quiet
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFind,
	}
	cmd.Flags().Int("limit", 0, "Maximum number of matches (0 for all)")
	cli.AddOutputFlags(cmd)
	return cmd
}

type foundCandidate struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Score  int    `json:"score"`
	Column string `json:"column"`
}

func runFind(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	query := strings.Join(args, " ")
	limit, _ := cmd.Flags().GetInt("limit")

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer release()

	b, err := cliInstance.Board(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	results := search.Board(b, query)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	found := make([]foundCandidate, len(results))
	for i, r := range results {
		found[i] = foundCandidate{
			ID:     r.Candidate.ID,
			Name:   r.Candidate.Name,
			Role:   r.Candidate.Role,
			Score:  r.Candidate.Score,
			Column: string(r.Column),
		}
	}

	w := formatter.Writer()
	switch {
	case formatter.Quiet:
		for _, f := range found {
			fmt.Fprintln(w, f.ID)
		}
		return nil
	case formatter.JSON:
		return formatter.JSONSuccess("candidates", found)
	}

	if len(results) == 0 {
		fmt.Fprintf(w, "No candidates match %q\n", query)
		return nil
	}
	fmt.Fprintf(w, "Found %d candidates matching %q\n", len(results), query)
	for _, r := range results {
		fmt.Fprintf(w, "%s %s\n", styles.CandidateLine(r.Candidate), styles.SubtitleStyle.Render("["+r.Column.Title()+"]"))
	}
	return nil
}
