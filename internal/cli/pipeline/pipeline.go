// Package pipeline holds the board commands: viewing, moving, searching,
// comparing and writing outreach for candidates.
package pipeline

import (
	"github.com/spf13/cobra"
)

const (
	columnSuggestion    = "Valid columns are: new, screening, interview, offer, rejected"
	candidateSuggestion = "Use 'hireboard board' or 'hireboard find <name>' to look up candidate IDs"
)

// Commands returns every pipeline command, ready to add to the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		BoardCmd(),
		ShowCmd(),
		MoveCmd(),
		BulkMoveCmd(),
		FindCmd(),
		HistoryCmd(),
		CompareCmd(),
		OutreachCmd(),
		SeedCmd(),
	}
}
