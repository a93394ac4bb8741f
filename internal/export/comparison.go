// Package export writes side-by-side comparisons of selected candidates
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/thenoetrevino/hireboard/internal/models"
)

// Default file names for comparison exports
const (
	DefaultCSVName  = "candidate_comparison.csv"
	DefaultXLSXName = "candidate_comparison.xlsx"
)

// ErrNoCandidates is returned when there is nothing to compare
var ErrNoCandidates = errors.New("no candidates to compare")

// Table is a comparison laid out with one column per candidate and one row
// per criterion
type Table struct {
	Header []string
	Rows   [][]string
}

// Compare builds the comparison table for cs, in the given order
func Compare(cs []models.Candidate) (Table, error) {
	if len(cs) == 0 {
		return Table{}, ErrNoCandidates
	}

	header := make([]string, 0, len(cs)+1)
	header = append(header, "Criteria")
	for _, c := range cs {
		header = append(header, c.Name)
	}

	criteria := []struct {
		label string
		value func(models.Candidate) string
	}{
		{"Role", func(c models.Candidate) string { return c.Role }},
		{"Score", func(c models.Candidate) string { return strconv.Itoa(c.Score) }},
		{"Email", func(c models.Candidate) string { return c.Email }},
		{"Applied", func(c models.Candidate) string { return c.AppliedDate }},
		{"Summary", func(c models.Candidate) string { return c.MatchSummary }},
	}

	rows := make([][]string, 0, len(criteria))
	for _, crit := range criteria {
		row := make([]string, 0, len(cs)+1)
		row = append(row, crit.label)
		for _, c := range cs {
			row = append(row, crit.value(c))
		}
		rows = append(rows, row)
	}

	return Table{Header: header, Rows: rows}, nil
}

// WriteCSV writes the table with every cell quoted
func (t Table) WriteCSV(w io.Writer) error {
	lines := make([]string, 0, len(t.Rows)+1)
	lines = append(lines, quoteRow(t.Header))
	for _, r := range t.Rows {
		lines = append(lines, quoteRow(r))
	}
	if _, err := io.WriteString(w, strings.Join(lines, "\n")+"\n"); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

func quoteRow(cells []string) string {
	quoted := make([]string, len(cells))
	for i, c := range cells {
		quoted[i] = `"` + strings.ReplaceAll(c, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
