package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/maze/internal/config"
	"github.com/example/maze/internal/core/maze"
	"github.com/example/maze/internal/ports/primary"
	"github.com/example/maze/internal/wire"
)

// GenerateCmd returns the root command, which carves a single maze.
func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate perfect mazes with a randomized depth-first search",
		Long: `Generate a perfect maze on a columns x rows grid using a recursive backtracker.

Each cell is printed as a bitmask of its remaining walls: Up=1, Right=2, Down=4, Left=8.
Runs are recorded in ~/.maze/maze.db unless --no-history is given.

Examples:
  maze --columns 10 --rows 10
  maze -c 2 -r 2 -s 42
  maze -c 40 -r 25 --check --no-history`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := generateRequest(cmd, wire.Config())
			_, err := wire.MazeAdapter().Generate(NewContext(), req)
			return err
		},
	}

	cmd.Flags().IntP("columns", "c", 0, "Number of columns (required)")
	cmd.Flags().IntP("rows", "r", 0, "Number of rows (required)")
	cmd.Flags().Uint64P("seed", "s", 0, "Seed for the random generator (default: drawn from entropy)")
	cmd.Flags().Bool("legacy-start", false, "Draw the start cell from [0, size-1) instead of [0, size)")
	cmd.Flags().Bool("check", false, "Audit the generated maze and fail if it is not perfect")
	cmd.Flags().Bool("no-history", false, "Do not record this run")
	cmd.MarkFlagRequired("columns")
	cmd.MarkFlagRequired("rows")

	return cmd
}

// generateRequest builds the service request from parsed flags and the effective config.
func generateRequest(cmd *cobra.Command, cfg *config.Config) primary.GenerateMazeRequest {
	columns, _ := cmd.Flags().GetInt("columns")
	rows, _ := cmd.Flags().GetInt("rows")
	legacy, _ := cmd.Flags().GetBool("legacy-start")
	check, _ := cmd.Flags().GetBool("check")
	noHistory, _ := cmd.Flags().GetBool("no-history")

	req := primary.GenerateMazeRequest{
		Columns:     columns,
		Rows:        rows,
		StartPolicy: cfg.StartPolicy,
		Check:       check,
		Record:      !noHistory && !cfg.DisableHistory,
	}

	// A zero seed is valid, so presence is decided by Changed rather than the value.
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		req.Seed = &seed
	}
	if legacy {
		req.StartPolicy = string(maze.StartLegacy)
	}

	return req
}
