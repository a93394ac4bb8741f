package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/hireboard/internal/daemon"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	socketPath, err := daemon.DefaultSocketPath()
	if err != nil {
		slog.Error("failed to resolve socket path", "error", err)
		os.Exit(1)
	}

	server, err := daemon.NewServer(socketPath)
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("hireboard daemon starting", "socket_path", socketPath, "pid", os.Getpid())

	// blocks until shutdown
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("hireboard daemon shutting down gracefully")
}
