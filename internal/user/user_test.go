package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecruiter_EnvOverride(t *testing.T) {
	t.Setenv(EnvRecruiter, "  Dana Scully ")
	assert.Equal(t, "Dana Scully", Recruiter())
}

func TestRecruiter_NeverEmpty(t *testing.T) {
	t.Setenv(EnvRecruiter, "")
	assert.NotEmpty(t, Recruiter())
}
