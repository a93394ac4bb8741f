package models

// Candidate represents one applicant card on the pipeline board
type Candidate struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Score        int    `json:"score"`
	AvatarURL    string `json:"avatar_url,omitempty"`
	Email        string `json:"email,omitempty"`
	AppliedDate  string `json:"applied_date,omitempty"` // YYYY-MM-DD
	MatchSummary string `json:"match_summary,omitempty"`
}

// Validate checks the invariants a candidate must satisfy before it is stored
func (c Candidate) Validate() error {
	if c.ID == "" {
		return ErrMissingID
	}
	if c.Score < MinScore || c.Score > MaxScore {
		return ErrInvalidScore
	}
	return nil
}

// StrongMatch reports whether the score reaches HighScore
func (c Candidate) StrongMatch() bool {
	return c.Score >= HighScore
}
