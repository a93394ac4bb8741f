package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/cli/pipeline"
	"github.com/thenoetrevino/hireboard/internal/cli/styles"
	"github.com/thenoetrevino/hireboard/internal/config"
	"github.com/thenoetrevino/hireboard/internal/daemon"
	"github.com/thenoetrevino/hireboard/internal/launcher"
	"github.com/thenoetrevino/hireboard/internal/logging"
	"github.com/thenoetrevino/hireboard/internal/tui/components"
	"github.com/thenoetrevino/hireboard/internal/tui/theme"
)

var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:   "hireboard",
	Short: "Hireboard - a terminal candidate pipeline board",
	Long: `Hireboard tracks candidates through a hiring pipeline:
new, screening, interview, offer and rejected.

Run without a command to open the interactive board.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: runBoard,
}

func runBoard(cmd *cobra.Command, _ []string) error {
	return launcher.Launch(cmd.Context(), cli.ConfigFromContext(cmd.Context()))
}

func init() {
	rootCmd.AddCommand(pipeline.Commands()...)
	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "tui",
			Short: "Open the interactive board",
			Args:  cobra.NoArgs,
			RunE:  runBoard,
		},
		daemonCmd(),
	)
}

// setup starts file logging, loads the config into the command context
// and applies the color scheme
func setup(cmd *cobra.Command, _ []string) error {
	closer, err := logging.Init()
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logCloser = closer

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	styles.Init(cfg.ColorScheme)
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

func daemonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daemon",
		Short: "Run the live update daemon in the foreground",
		Long: `Run the daemon that relays board changes between open boards.
Boards and commands connect to it automatically when it is running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			socketPath, err := daemon.DefaultSocketPath()
			if err != nil {
				return err
			}
			server, err := daemon.NewServer(socketPath)
			if err != nil {
				return err
			}
			slog.Info("hireboard daemon starting", "socket_path", socketPath)
			fmt.Fprintf(cmd.OutOrStdout(), "daemon listening on %s\n", socketPath)
			return server.Start(cmd.Context())
		},
	}
}

// Execute runs the root command under ctx
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
