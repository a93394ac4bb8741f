package models

// ============================================================================
// SCORE CONSTANTS
// ============================================================================

const (
	MinScore = 0
	MaxScore = 100

	// HighScore and above is rendered as a strong match
	HighScore = 80
)

// ============================================================================
// CACHE CONSTANTS
// ============================================================================

// BoardQueryKey is the fixed cache key the board is stored under
const BoardQueryKey = "candidates"
