package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/cli/styles"
	"github.com/thenoetrevino/hireboard/internal/export"
)

// CompareCmd returns the compare command
func CompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <candidate-id>...",
		Short: "Compare candidates side by side",
		Long: `Compare candidates side by side on role, score, email, application
date and match summary. The comparison can be exported as CSV or as an
Excel workbook; pass paths as --csv=<path> and --xlsx=<path>.

Examples:
  hireboard compare c1 c3 c4
  hireboard compare c1 c3 --csv
  hireboard compare c1 c3 --csv=- > picks.csv
  hireboard compare c1 c3 --xlsx=shortlist
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runCompare,
	}

	cmd.Flags().String("csv", "", "Write CSV to this path ('-' for stdout)")
	cmd.Flags().Lookup("csv").NoOptDefVal = export.DefaultCSVName
	cmd.Flags().String("xlsx", "", "Write an Excel workbook to this path")
	cmd.Flags().Lookup("xlsx").NoOptDefVal = export.DefaultXLSXName
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	csvPath, _ := cmd.Flags().GetString("csv")
	xlsxPath, _ := cmd.Flags().GetString("xlsx")

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer release()

	candidates, err := cliInstance.Lookup(ctx, args)
	if err != nil {
		return formatter.Fail(err, candidateSuggestion)
	}
	tbl, err := export.Compare(candidates)
	if err != nil {
		return formatter.Fail(err, "")
	}

	w := formatter.Writer()
	var written []string

	if csvPath == "-" {
		return tbl.WriteCSV(w)
	}
	if csvPath != "" {
		if err := writeCSVFile(tbl, csvPath); err != nil {
			return formatter.Fail(err, "")
		}
		written = append(written, csvPath)
	}
	if xlsxPath != "" {
		path, err := tbl.SaveXLSX(xlsxPath)
		if err != nil {
			return formatter.Fail(err, "")
		}
		written = append(written, path)
	}

	switch {
	case formatter.Quiet:
		for _, path := range written {
			fmt.Fprintln(w, path)
		}
		return nil
	case formatter.JSON:
		return formatter.JSONSuccess("comparison", map[string]any{
			"header": tbl.Header,
			"rows":   tbl.Rows,
			"files":  written,
		})
	}

	if len(written) == 0 {
		fmt.Fprintln(w, renderTable(tbl))
		return nil
	}
	for _, path := range written {
		fmt.Fprintf(w, "✓ Comparison written to %s\n", path)
	}
	return nil
}

func writeCSVFile(tbl export.Table, path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := tbl.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func renderTable(tbl export.Table) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.SubtitleStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.TitleStyle.Padding(0, 1)
			case col == 0:
				return styles.LabelStyle.Padding(0, 1)
			default:
				return styles.ValueStyle.Padding(0, 1).Width(28)
			}
		}).
		Headers(tbl.Header...).
		Rows(tbl.Rows...).
		String()
}
