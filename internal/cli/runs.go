package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/maze/internal/ports/primary"
	"github.com/example/maze/internal/wire"
)

// RunsCmd returns the runs command
func RunsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "View and manage recorded runs",
		Long:  `List, inspect and prune the history of generated mazes.`,
	}

	cmd.AddCommand(runsListCmd())
	cmd.AddCommand(runsShowCmd())
	cmd.AddCommand(runsPruneCmd())

	return cmd
}

func runsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs",
		Long:  "List recorded runs, newest first (default 20)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			columns, _ := cmd.Flags().GetInt("columns")
			rows, _ := cmd.Flags().GetInt("rows")

			if limit <= 0 {
				limit = 20
			}

			_, err := wire.MazeAdapter().ListRuns(NewContext(), primary.RunFilters{
				Columns: columns,
				Rows:    rows,
				Limit:   limit,
			})
			return err
		},
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")
	cmd.Flags().IntP("columns", "c", 0, "Filter by number of columns")
	cmd.Flags().IntP("rows", "r", 0, "Filter by number of rows")

	return cmd
}

func runsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [run-id]",
		Short: "Show run details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRunID(args[0]); err != nil {
				return err
			}
			_, err := wire.MazeAdapter().ShowRun(NewContext(), args[0])
			return err
		},
	}
}

func runsPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old runs",
		Long:  "Delete runs older than the specified number of days (default 30)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")

			if days <= 0 {
				days = 30
			}

			_, err := wire.MazeAdapter().PruneRuns(NewContext(), days)
			return err
		},
	}

	cmd.Flags().Int("days", 30, "Delete runs older than this many days")

	return cmd
}

// ReplayCmd returns the replay command
func ReplayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay [run-id]",
		Short: "Regenerate a recorded run and verify it",
		Long: `Regenerate a maze from a recorded run's dimensions, seed and start policy,
then compare its digest with the one recorded.

Examples:
  maze replay RUN-001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateRunID(args[0]); err != nil {
				return err
			}
			resp, err := wire.MazeAdapter().Replay(NewContext(), args[0])
			if err != nil {
				return err
			}
			if !resp.Matches {
				return fmt.Errorf("run %s did not reproduce", args[0])
			}
			return nil
		},
	}
}
