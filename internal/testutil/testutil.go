// Package testutil holds shared helpers for database, daemon and command tests
package testutil

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/hireboard/internal/database"
	"github.com/thenoetrevino/hireboard/internal/mockapi"
)

// SetupTestDB creates an in-memory database with the full schema, seeded
// with the demo pipeline. It is closed when the test ends.
func SetupTestDB(t *testing.T) (*sql.DB, *database.Repository) {
	t.Helper()

	ctx := context.Background()
	db, err := database.InitDB(ctx, database.MemoryDSN)
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() {
		_ = db.Close()
	})

	repo := database.NewRepository(db)
	require.NoError(t, repo.Seed(ctx, mockapi.SeedBoard()), "failed to seed test database")

	return db, repo
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}

// SetupCobraCommand sets up a cobra command with args for testing
func SetupCobraCommand(cmd *cobra.Command, args []string) {
	cmd.SetArgs(args)
	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
}
