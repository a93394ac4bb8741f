package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/hireboard/internal/daemon"
	"github.com/thenoetrevino/hireboard/internal/events"
)

// GetTestSocketPath generates a unique temporary socket path for testing.
// The socket is guaranteed to not exist and will be cleaned up by test cleanup.
func GetTestSocketPath(t *testing.T) string {
	t.Helper()

	// unix socket paths are short; t.TempDir embeds the test name
	tmpDir, err := os.MkdirTemp("", "hb")
	if err != nil {
		t.Fatalf("Failed to create socket dir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.RemoveAll(tmpDir)
	})

	return filepath.Join(tmpDir, "test.sock")
}

// SetupTestDaemon creates a test daemon server on a temporary socket.
// It starts the server in a goroutine and waits for it to be ready.
// Returns the server and socket path. Cleanup is automatic via t.Cleanup().
func SetupTestDaemon(t *testing.T) (*daemon.Server, string) {
	t.Helper()

	socketPath := GetTestSocketPath(t)

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}

	// Register cleanup FIRST, before starting server
	t.Cleanup(func() {
		if err := server.Shutdown(); err != nil {
			t.Logf("Warning: daemon shutdown error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// Start may return after the test has finished, so it must not log
	go func() {
		_ = server.Start(ctx)
	}()

	// Wait for socket to be created (max 2 seconds)
	if !WaitForCondition(t, func() bool {
		_, err := os.Stat(socketPath)
		return err == nil
	}, 2*time.Second, "daemon socket") {
		t.Fatal("Timeout waiting for daemon socket to be created")
	}
	// give the accept loop a moment
	time.Sleep(10 * time.Millisecond)

	return server, socketPath
}

// SetupTestClient creates a test event client connected to the given socket path.
// Cleanup is automatic via t.Cleanup().
func SetupTestClient(t *testing.T, socketPath string) *events.Client {
	t.Helper()

	client, err := events.NewClient(socketPath)
	if err != nil {
		t.Fatalf("Failed to create test client: %v", err)
	}

	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("Warning: client close error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect test client: %v", err)
	}

	return client
}

// WaitForEvent waits for an event on a channel with timeout.
// Returns the event if received, or fails the test on timeout.
func WaitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()

	select {
	case event, ok := <-ch:
		if !ok {
			t.Fatal("Event channel closed unexpectedly")
		}
		return event
	case <-time.After(timeout):
		t.Fatalf("Timeout waiting for event after %v", timeout)
		return events.Event{}
	}
}

// WaitForCondition waits for a condition to become true within the timeout.
// The condition function is called repeatedly until it returns true or timeout.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, description string) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Logf("Timeout waiting for condition: %s", description)
	return false
}
