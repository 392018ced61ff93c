package primary

import (
	"context"
	"time"

	"github.com/example/maze/internal/core/maze"
)

// MazeService defines the primary port for maze generation and run history.
type MazeService interface {
	// Generate validates the request, carves a maze and records the run when asked to.
	Generate(ctx context.Context, req GenerateMazeRequest) (*GenerateMazeResponse, error)

	// Replay regenerates a recorded run and compares it with the recorded digest.
	Replay(ctx context.Context, runID string) (*ReplayResponse, error)

	// GetRun retrieves a single recorded run.
	GetRun(ctx context.Context, runID string) (*Run, error)

	// ListRuns retrieves recorded runs matching the given filters.
	ListRuns(ctx context.Context, filters RunFilters) ([]*Run, error)

	// PruneRuns deletes runs older than the specified number of days.
	PruneRuns(ctx context.Context, olderThanDays int) (int, error)
}

// GenerateMazeRequest contains the parameters for generating a maze.
type GenerateMazeRequest struct {
	Columns     int
	Rows        int
	Seed        *uint64 // nil draws a seed from entropy
	StartPolicy string  // "uniform" (default) or "legacy"
	Check       bool    // audit the grid before returning
	Record      bool    // store the run in history
}

// GenerateMazeResponse contains the result of generating a maze.
type GenerateMazeResponse struct {
	RunID           string // empty when the run was not recorded
	Columns         int
	Rows            int
	Seed            uint64
	SeedFromEntropy bool
	StartPolicy     string
	Grid            maze.Grid
	Digest          string
	Elapsed         time.Duration
	RecordErr       error // set when recording failed; the grid is still valid
}

// ReplayResponse contains the result of replaying a recorded run.
type ReplayResponse struct {
	Run     *Run
	Grid    maze.Grid
	Digest  string
	Matches bool
	Elapsed time.Duration
}

// Run represents a recorded generation run at the port boundary.
type Run struct {
	ID              string
	Columns         int
	Rows            int
	Seed            uint64
	SeedFromEntropy bool
	StartPolicy     string
	Cells           int
	Digest          string
	Elapsed         time.Duration
	CreatedAt       string
}

// RunFilters contains filter options for querying runs.
type RunFilters struct {
	Columns int
	Rows    int
	Limit   int
}
