package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hireboard/internal/models"
	"github.com/thenoetrevino/hireboard/internal/services/candidate"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

type mockDataWithoutID struct {
	Name  string
	Value int
}

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Method Tests
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		validate func(t *testing.T, result map[string]any)
	}{
		{
			name: "map data",
			data: map[string]any{"test": "value"},
			validate: func(t *testing.T, result map[string]any) {
				dataMap := result["data"].(map[string]any)
				assert.Equal(t, "value", dataMap["test"])
			},
		},
		{
			name: "number",
			data: 42,
			validate: func(t *testing.T, result map[string]any) {
				// JSON unmarshals numbers as float64
				assert.Equal(t, float64(42), result["data"])
			},
		},
		{
			name: "nil data",
			data: nil,
			validate: func(t *testing.T, result map[string]any) {
				assert.Nil(t, result["data"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(true, false)
			require.NoError(t, formatter.Success(tt.data))

			var result map[string]any
			require.NoError(t, json.Unmarshal(out.Bytes(), &result), out.String())
			assert.Equal(t, true, result["success"])
			tt.validate(t, result)
		})
	}
}

func TestOutputFormatter_Success_QuietPrintsID(t *testing.T) {
	formatter, out, _ := newTestFormatter(false, true)

	require.NoError(t, formatter.Success(mockDataWithID{ID: "c42", Name: "Test"}))
	assert.Equal(t, "c42", strings.TrimSpace(out.String()))
}

func TestOutputFormatter_Success_QuietWithoutIDFallsThrough(t *testing.T) {
	formatter, out, _ := newTestFormatter(false, true)

	require.NoError(t, formatter.Success(mockDataWithoutID{Name: "Test", Value: 42}))
	assert.Contains(t, out.String(), "Test")
}

func TestOutputFormatter_Success_HumanReadable(t *testing.T) {
	tests := []struct {
		name          string
		data          any
		shouldContain string
	}{
		{name: "struct", data: mockDataWithID{ID: "c1", Name: "Alice"}, shouldContain: "Alice"},
		{name: "string", data: "human readable text", shouldContain: "human readable text"},
		{name: "slice", data: []string{"item1", "item2"}, shouldContain: "item1"},
		{name: "column id", data: models.ColumnOffer, shouldContain: "offer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter, out, _ := newTestFormatter(false, false)
			require.NoError(t, formatter.Success(tt.data))
			assert.Contains(t, out.String(), tt.shouldContain)
		})
	}
}

// ============================================================================
// Error Method Tests
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter, out, errOut := newTestFormatter(true, false)

	require.NoError(t, formatter.ErrorWithSuggestion("CANDIDATE_NOT_FOUND", "candidate c99 not found", "run 'hireboard board'"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "CANDIDATE_NOT_FOUND", errData["code"])
	assert.Equal(t, "candidate c99 not found", errData["message"])
	assert.Equal(t, "run 'hireboard board'", errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error_JSONOmitsEmptySuggestion(t *testing.T) {
	formatter, out, _ := newTestFormatter(true, false)

	require.NoError(t, formatter.Error("ERROR", "boom"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	_, ok := result["error"].(map[string]any)["suggestion"]
	assert.False(t, ok)
}

func TestOutputFormatter_Error_HumanGoesToStderr(t *testing.T) {
	formatter, out, errOut := newTestFormatter(false, false)

	require.NoError(t, formatter.ErrorWithSuggestion("ERROR", "boom", "try again"))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Error: boom")
	assert.Contains(t, errOut.String(), "Suggestion: try again")
}

func TestOutputFormatter_Fail(t *testing.T) {
	formatter, _, errOut := newTestFormatter(false, false)
	cause := fmt.Errorf("%w: c99", models.ErrCandidateNotFound)

	err := formatter.Fail(cause, "")

	require.Error(t, err)
	assert.True(t, Reported(err))
	assert.ErrorIs(t, err, models.ErrCandidateNotFound)
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.Contains(t, errOut.String(), "c99")
	assert.NoError(t, formatter.Fail(nil, ""))
}

// ============================================================================
// Exit Codes
// ============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{name: "nil", err: nil, want: ExitSuccess, code: "ERROR"},
		{name: "usage", err: fmt.Errorf("%w: missing target", ErrUsage), want: ExitUsage, code: "USAGE_ERROR"},
		{name: "not found", err: models.ErrCandidateNotFound, want: ExitNotFound, code: "CANDIDATE_NOT_FOUND"},
		{name: "unknown column", err: fmt.Errorf("%w: \"hired\"", models.ErrUnknownColumn), want: ExitValidation, code: "VALIDATION_ERROR"},
		{name: "empty selection", err: candidate.ErrEmptySelection, want: ExitValidation, code: "VALIDATION_ERROR"},
		{name: "bad score", err: models.ErrInvalidScore, want: ExitDataErr, code: "DATA_ERROR"},
		{
			name: "rolled back",
			err:  candidate.RolledBack{Err: fmt.Errorf("%w after 5s", candidate.ErrMoveTimeout)},
			want: ExitError,
			code: "MOVE_ROLLED_BACK",
		},
		{name: "other", err: fmt.Errorf("disk on fire"), want: ExitError, code: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
			if tt.err != nil {
				assert.Equal(t, tt.code, ErrorCode(tt.err))
			}
		})
	}
}
