package secondary

import (
	"context"

	"github.com/example/maze/internal/core/maze"
)

// RunRepository defines the secondary port for generation run history.
// Runs are immutable - no Update operations, but old entries can be pruned.
type RunRepository interface {
	// Create persists a new run.
	Create(ctx context.Context, run *RunRecord) error

	// GetByID retrieves a run by its ID.
	GetByID(ctx context.Context, id string) (*RunRecord, error)

	// List retrieves runs matching the given filters, newest first.
	List(ctx context.Context, filters RunFilters) ([]*RunRecord, error)

	// GetNextID returns the next available run ID.
	GetNextID(ctx context.Context) (string, error)

	// PruneOlderThan deletes runs older than the given number of days.
	// Returns the number of deleted runs.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// RunRecord represents a generation run as stored in persistence.
// The grid itself is not stored; Digest identifies it.
type RunRecord struct {
	ID              string
	Columns         int
	Rows            int
	Seed            uint64
	SeedFromEntropy bool
	StartPolicy     string
	Cells           int
	Digest          string
	ElapsedNanos    int64
	CreatedAt       string
}

// RunFilters contains filter options for querying runs.
type RunFilters struct {
	Columns int // 0 means any
	Rows    int // 0 means any
	Limit   int
}

// RandomProvider creates random sources for generation.
type RandomProvider interface {
	// Seeded returns a new deterministic source for seed.
	Seeded(seed uint64) maze.Random

	// EntropySeed draws a seed from a nondeterministic source.
	EntropySeed() (uint64, error)
}
