package pipeline

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/hireboard/internal/cli"
	"github.com/thenoetrevino/hireboard/internal/mockapi"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo pipeline into the database",
		Long: `Load the demo pipeline into the sqlite database. An empty database is
seeded automatically; use --force to put every demo candidate back in its
original column and rank.
`,
		Args: cobra.NoArgs,
		RunE: runSeed,
	}
	cmd.Flags().Bool("force", false, "Reseed even when candidates exist")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, release, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}
	defer release()

	if cliInstance.Seeder == nil {
		return formatter.Fail(fmt.Errorf("%w: the %s backend is seeded in memory on every run", cli.ErrUsage, cliInstance.Config.Backend),
			"Set backend: sqlite in the config file")
	}

	before, err := cliInstance.Seeder.Count(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	seeded := false
	if before == 0 || force {
		seed := mockapi.SeedBoard()
		if err := cliInstance.Seeder.Seed(ctx, seed); err != nil {
			return formatter.Fail(fmt.Errorf("failed to seed database: %w", err), "")
		}
		seeded = true
	}

	after, err := cliInstance.Seeder.Count(ctx)
	if err != nil {
		return formatter.Fail(err, "")
	}

	w := formatter.Writer()
	switch {
	case formatter.Quiet:
		fmt.Fprintln(w, after)
		return nil
	case formatter.JSON:
		return formatter.JSONSuccess("data", map[string]any{"seeded": seeded, "candidates": after})
	}

	if !seeded {
		fmt.Fprintf(w, "Database already has %d candidates; use --force to reseed\n", after)
		return nil
	}
	fmt.Fprintf(w, "✓ Seeded %d candidates\n", after)
	return nil
}
