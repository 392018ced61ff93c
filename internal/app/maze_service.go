package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/maze/internal/core/maze"
	"github.com/example/maze/internal/ports/primary"
	"github.com/example/maze/internal/ports/secondary"
)

// MazeServiceImpl implements the MazeService interface.
type MazeServiceImpl struct {
	runRepo secondary.RunRepository
	random  secondary.RandomProvider
	now     func() time.Time
}

// NewMazeService creates a new MazeService with injected dependencies.
// runRepo may be nil, in which case runs are never recorded.
func NewMazeService(runRepo secondary.RunRepository, random secondary.RandomProvider) *MazeServiceImpl {
	return &MazeServiceImpl{
		runRepo: runRepo,
		random:  random,
		now:     time.Now,
	}
}

// Generate validates the request, carves a maze and optionally records the run.
func (s *MazeServiceImpl) Generate(ctx context.Context, req primary.GenerateMazeRequest) (*primary.GenerateMazeResponse, error) {
	guard := maze.CanGenerate(maze.GenerateContext{Columns: req.Columns, Rows: req.Rows})
	if err := guard.Error(); err != nil {
		return nil, err
	}

	policy, ok := maze.ParseStartPolicy(req.StartPolicy)
	if !ok {
		return nil, fmt.Errorf("unknown start policy %q (want %q or %q)", req.StartPolicy, maze.StartUniform, maze.StartLegacy)
	}

	resp := &primary.GenerateMazeResponse{
		Columns:     req.Columns,
		Rows:        req.Rows,
		StartPolicy: string(policy),
	}
	if req.Seed != nil {
		resp.Seed = *req.Seed
	} else {
		seed, err := s.random.EntropySeed()
		if err != nil {
			return nil, fmt.Errorf("failed to seed random source: %w", err)
		}
		resp.Seed = seed
		resp.SeedFromEntropy = true
	}

	resp.Grid, resp.Elapsed = s.generate(req.Columns, req.Rows, resp.Seed, policy)
	resp.Digest = maze.Digest(resp.Grid)

	if req.Check {
		if err := maze.Audit(resp.Grid, req.Columns, req.Rows); err != nil {
			return nil, fmt.Errorf("generated grid failed audit: %w", err)
		}
	}

	if req.Record && s.runRepo != nil {
		resp.RunID, resp.RecordErr = s.record(ctx, resp)
	}

	return resp, nil
}

// Replay regenerates a recorded run and compares digests.
func (s *MazeServiceImpl) Replay(ctx context.Context, runID string) (*primary.ReplayResponse, error) {
	run, err := s.GetRun(ctx, runID)
	if err != nil {
		return nil, err
	}

	policy, ok := maze.ParseStartPolicy(run.StartPolicy)
	if !ok {
		return nil, fmt.Errorf("run %s has unknown start policy %q", run.ID, run.StartPolicy)
	}

	grid, elapsed := s.generate(run.Columns, run.Rows, run.Seed, policy)
	digest := maze.Digest(grid)

	return &primary.ReplayResponse{
		Run:     run,
		Grid:    grid,
		Digest:  digest,
		Matches: digest == run.Digest,
		Elapsed: elapsed,
	}, nil
}

// GetRun retrieves a recorded run by ID.
func (s *MazeServiceImpl) GetRun(ctx context.Context, runID string) (*primary.Run, error) {
	if s.runRepo == nil {
		return nil, fmt.Errorf("run history is disabled")
	}
	record, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	return s.recordToRun(record), nil
}

// ListRuns retrieves recorded runs matching the given filters.
func (s *MazeServiceImpl) ListRuns(ctx context.Context, filters primary.RunFilters) ([]*primary.Run, error) {
	if s.runRepo == nil {
		return nil, fmt.Errorf("run history is disabled")
	}
	records, err := s.runRepo.List(ctx, secondary.RunFilters{
		Columns: filters.Columns,
		Rows:    filters.Rows,
		Limit:   filters.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}

	runs := make([]*primary.Run, len(records))
	for i, r := range records {
		runs[i] = s.recordToRun(r)
	}
	return runs, nil
}

// PruneRuns deletes runs older than the specified number of days.
func (s *MazeServiceImpl) PruneRuns(ctx context.Context, olderThanDays int) (int, error) {
	if s.runRepo == nil {
		return 0, fmt.Errorf("run history is disabled")
	}
	if olderThanDays < 0 {
		return 0, fmt.Errorf("days must not be negative (got %d)", olderThanDays)
	}
	return s.runRepo.PruneOlderThan(ctx, olderThanDays)
}

// Helper methods

// generate times a single walk. Only the walk itself is measured.
func (s *MazeServiceImpl) generate(columns, rows int, seed uint64, policy maze.StartPolicy) (maze.Grid, time.Duration) {
	rng := s.random.Seeded(seed)
	start := s.now()
	grid := maze.Generate(columns, rows, rng, maze.WithStartPolicy(policy))
	return grid, s.now().Sub(start)
}

func (s *MazeServiceImpl) record(ctx context.Context, resp *primary.GenerateMazeResponse) (string, error) {
	id, err := s.runRepo.GetNextID(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to allocate run ID: %w", err)
	}

	record := &secondary.RunRecord{
		ID:              id,
		Columns:         resp.Columns,
		Rows:            resp.Rows,
		Seed:            resp.Seed,
		SeedFromEntropy: resp.SeedFromEntropy,
		StartPolicy:     resp.StartPolicy,
		Cells:           len(resp.Grid),
		Digest:          resp.Digest,
		ElapsedNanos:    resp.Elapsed.Nanoseconds(),
	}
	if err := s.runRepo.Create(ctx, record); err != nil {
		return "", fmt.Errorf("failed to record run: %w", err)
	}
	return id, nil
}

func (s *MazeServiceImpl) recordToRun(r *secondary.RunRecord) *primary.Run {
	return &primary.Run{
		ID:              r.ID,
		Columns:         r.Columns,
		Rows:            r.Rows,
		Seed:            r.Seed,
		SeedFromEntropy: r.SeedFromEntropy,
		StartPolicy:     r.StartPolicy,
		Cells:           r.Cells,
		Digest:          r.Digest,
		Elapsed:         time.Duration(r.ElapsedNanos),
		CreatedAt:       r.CreatedAt,
	}
}

// Ensure MazeServiceImpl implements the interface
var _ primary.MazeService = (*MazeServiceImpl)(nil)
