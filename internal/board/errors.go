package board

import "errors"

var (
	// ErrNoFetcher is returned by Load when the store has no fetch source
	ErrNoFetcher = errors.New("board store has no fetch source")
)
