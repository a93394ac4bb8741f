// Package cli sets up CLI instances and runs commands for tests. It lives
// apart from testutil so service tests can import testutil without
// pulling in the command layer.
package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/app"
	hbcli "github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/config"
	"github.com/thenoetrevino/hireboard/internal/database"
	"github.com/thenoetrevino/hireboard/internal/events"
	"github.com/thenoetrevino/hireboard/internal/mockapi"
	"github.com/thenoetrevino/hireboard/internal/testutil"
)

// SetupCLITest returns a CLI over a seeded in-memory sqlite database.
// opts are passed to app.New, for example an event publisher.
func SetupCLITest(t *testing.T, opts ...app.Option) (*hbcli.CLI, *database.Repository) {
	t.Helper()

	_, repo := testutil.SetupTestDB(t)

	cfg := config.Default()
	c := &hbcli.CLI{
		Config:  cfg,
		App:     app.New(repo, repo, opts...),
		History: repo,
		Seeder:  repo,
	}
	t.Cleanup(func() {
		_ = c.Close()
	})
	return c, repo
}

// SetupSimulatedCLITest returns a CLI over an in-process backend with no
// latency and the given failure rate
func SetupSimulatedCLITest(t *testing.T, failureRate float64) (*hbcli.CLI, *mockapi.Server) {
	t.Helper()

	srv := mockapi.New(mockapi.Config{FailureRate: failureRate}, nil)

	cfg := config.Default()
	cfg.Backend = config.BackendSimulated
	c := &hbcli.CLI{
		Config:  cfg,
		App:     app.New(srv, srv),
		History: hbcli.SimulatedHistory{Server: srv},
	}
	t.Cleanup(func() {
		_ = c.Close()
	})
	return c, srv
}

// WithDaemon returns the app option that publishes through a client
// connected to a fresh test daemon, plus the daemon's socket path
func WithDaemon(t *testing.T) (app.Option, string) {
	t.Helper()

	_, socketPath := testutil.SetupTestDaemon(t)
	client := testutil.SetupTestClient(t, socketPath)
	var publisher events.EventPublisher = client
	return app.WithEventPublisher(publisher), socketPath
}

// ExecuteCLICommand runs cmd with args against c and returns what it wrote
// to stdout and stderr
func ExecuteCLICommand(t *testing.T, c *hbcli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if c == nil {
		t.Fatal("CLI cannot be nil - SetupCLITest must be called first")
	}

	testutil.SetupCobraCommand(cmd, args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.ExecuteContext(hbcli.WithCLI(context.Background(), c))
	return stdout.String(), stderr.String(), err
}
