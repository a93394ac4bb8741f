package database

import (
	"errors"

	"github.com/thenoetrevino/hireboard/internal/models"
)

// ErrCandidateNotFound is returned when a move names an unknown candidate
var ErrCandidateNotFound = models.ErrCandidateNotFound

// ErrInvalidColumn is returned when a move targets a column outside the pipeline
var ErrInvalidColumn = errors.New("invalid column")
