package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/example/maze/internal/ports/primary"
)

// MazeAdapter is a thin adapter that translates CLI operations to MazeService calls.
// It depends only on the MazeService interface, enabling easy testing with mocks.
type MazeAdapter struct {
	service primary.MazeService
	out     io.Writer
}

// NewMazeAdapter creates a new MazeAdapter with the given service.
func NewMazeAdapter(service primary.MazeService, out io.Writer) *MazeAdapter {
	return &MazeAdapter{
		service: service,
		out:     out,
	}
}

// Generate generates a maze and prints the cell count, the grid and the elapsed time.
func (a *MazeAdapter) Generate(ctx context.Context, req primary.GenerateMazeRequest) (*primary.GenerateMazeResponse, error) {
	resp, err := a.service.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(a.out, "(%d) %s\n", len(resp.Grid), resp.Grid)
	fmt.Fprintf(a.out, "Elapsed: %s\n", color.New(color.FgCyan).Sprint(FormatElapsed(resp.Elapsed)))

	if resp.SeedFromEntropy {
		fmt.Fprintf(a.out, "Seed: %d\n", resp.Seed)
	}
	if resp.RunID != "" {
		fmt.Fprintf(a.out, "Run: %s\n", resp.RunID)
	}
	if resp.RecordErr != nil {
		fmt.Fprintf(a.out, "%s run not recorded: %v\n", color.New(color.FgYellow).Sprint("Warning:"), resp.RecordErr)
	}

	return resp, nil
}

// Replay regenerates a recorded run and reports whether it still matches.
func (a *MazeAdapter) Replay(ctx context.Context, runID string) (*primary.ReplayResponse, error) {
	resp, err := a.service.Replay(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to replay run: %w", err)
	}

	fmt.Fprintf(a.out, "(%d) %s\n", len(resp.Grid), resp.Grid)
	fmt.Fprintf(a.out, "Elapsed: %s\n", color.New(color.FgCyan).Sprint(FormatElapsed(resp.Elapsed)))

	status := color.New(color.FgGreen).Sprint("MATCH")
	if !resp.Matches {
		status = color.New(color.FgRed).Sprint("MISMATCH")
	}
	fmt.Fprintf(a.out, "%s %s (recorded %s, replayed %s)\n", status, resp.Run.ID, resp.Run.Digest, resp.Digest)

	return resp, nil
}

// ListRuns lists recorded runs.
func (a *MazeAdapter) ListRuns(ctx context.Context, filters primary.RunFilters) ([]*primary.Run, error) {
	runs, err := a.service.ListRuns(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(a.out, "No runs found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Generate your first maze:")
		fmt.Fprintln(a.out, "  maze --columns 10 --rows 10")
		return runs, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tSEED\tSTART\tELAPSED\tDIGEST\tCREATED")
	fmt.Fprintln(w, "--\t----\t----\t-----\t-------\t------\t-------")

	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\t%s\t%s\t%s\n",
			r.ID,
			r.Columns,
			r.Rows,
			formatSeed(r),
			r.StartPolicy,
			FormatElapsed(r.Elapsed),
			r.Digest,
			r.CreatedAt,
		)
	}

	w.Flush()
	return runs, nil
}

// ShowRun displays details for a single run.
func (a *MazeAdapter) ShowRun(ctx context.Context, runID string) (*primary.Run, error) {
	r, err := a.service.GetRun(ctx, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	fmt.Fprintf(a.out, "\nRun: %s\n", r.ID)
	fmt.Fprintf(a.out, "Size:    %dx%d (%d cells)\n", r.Columns, r.Rows, r.Cells)
	fmt.Fprintf(a.out, "Seed:    %s\n", formatSeed(r))
	fmt.Fprintf(a.out, "Start:   %s\n", r.StartPolicy)
	fmt.Fprintf(a.out, "Elapsed: %s\n", FormatElapsed(r.Elapsed))
	fmt.Fprintf(a.out, "Digest:  %s\n", r.Digest)
	fmt.Fprintf(a.out, "Created: %s\n", r.CreatedAt)
	fmt.Fprintln(a.out)

	return r, nil
}

// PruneRuns deletes runs older than days.
func (a *MazeAdapter) PruneRuns(ctx context.Context, days int) (int, error) {
	count, err := a.service.PruneRuns(ctx, days)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}

	if count == 0 {
		fmt.Fprintf(a.out, "No runs older than %d days found.\n", days)
	} else {
		fmt.Fprintf(a.out, "✓ Pruned %d runs older than %d days\n", count, days)
	}
	return count, nil
}

// FormatElapsed renders d with two decimals in the largest fitting unit, e.g. "1.25ms".
func FormatElapsed(d time.Duration) string {
	switch {
	case d >= time.Second:
		return strconv.FormatFloat(d.Seconds(), 'f', 2, 64) + "s"
	case d >= time.Millisecond:
		return strconv.FormatFloat(float64(d)/float64(time.Millisecond), 'f', 2, 64) + "ms"
	case d >= time.Microsecond:
		return strconv.FormatFloat(float64(d)/float64(time.Microsecond), 'f', 2, 64) + "µs"
	default:
		return strconv.FormatFloat(float64(d), 'f', 2, 64) + "ns"
	}
}

func formatSeed(r *primary.Run) string {
	if r.SeedFromEntropy {
		return fmt.Sprintf("%d (entropy)", r.Seed)
	}
	return strconv.FormatUint(r.Seed, 10)
}
