// Package search does fuzzy candidate lookup by name and role
package search

import (
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/thenoetrevino/hireboard/internal/models"
)

// Result is a matched candidate with the column it sits in
type Result struct {
	Candidate models.Candidate
	Column    models.ColumnID
	Score     int
}

// Key is the text a candidate is matched against
func Key(c models.Candidate) string {
	return c.Name + " " + c.Role
}

// Candidates returns the candidates matching query, best match first.
// An empty query keeps every candidate in the given order.
func Candidates(cs []models.Candidate, query string) []models.Candidate {
	query = strings.TrimSpace(query)
	if query == "" {
		return cs
	}

	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = Key(c)
	}
	matches := fuzzy.Find(query, names)
	out := make([]models.Candidate, len(matches))
	for i, match := range matches {
		out[i] = cs[match.Index]
	}
	return out
}

// Board searches every column of b, best match first
func Board(b models.Board, query string) []Result {
	var all []Result
	for _, col := range models.Columns {
		for _, c := range b[col] {
			all = append(all, Result{Candidate: c, Column: col})
		}
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return all
	}

	names := make([]string, len(all))
	for i, r := range all {
		names[i] = Key(r.Candidate)
	}
	matches := fuzzy.Find(query, names)
	out := make([]Result, len(matches))
	for i, match := range matches {
		out[i] = all[match.Index]
		out[i].Score = match.Score
	}
	return out
}

// Filter keeps, per column, only the candidates matching query. Column
// order is preserved so positions stay meaningful.
func Filter(b models.Board, query string) models.Board {
	query = strings.TrimSpace(query)
	if query == "" {
		return b
	}

	keep := make(map[string]struct{})
	for _, r := range Board(b, query) {
		keep[r.Candidate.ID] = struct{}{}
	}

	out := models.NewBoard()
	for _, col := range models.Columns {
		for _, c := range b[col] {
			if _, ok := keep[c.ID]; ok {
				out[col] = append(out[col], c)
			}
		}
	}
	return out
}
