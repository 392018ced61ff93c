package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/example/maze/internal/core/maze"
	"github.com/example/maze/internal/core/run"
	"github.com/example/maze/internal/ports/primary"
	"github.com/example/maze/internal/ports/secondary"
)

// mockRunRepository implements secondary.RunRepository for testing.
type mockRunRepository struct {
	runs      map[string]*secondary.RunRecord
	nextID    int
	createErr error
	pruned    int
	pruneDays int
}

func newMockRunRepository() *mockRunRepository {
	return &mockRunRepository{
		runs: make(map[string]*secondary.RunRecord),
	}
}

func (m *mockRunRepository) Create(ctx context.Context, r *secondary.RunRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.runs[r.ID] = r
	return nil
}

func (m *mockRunRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	if r, ok := m.runs[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("run %s not found", id)
}

func (m *mockRunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	var result []*secondary.RunRecord
	for _, r := range m.runs {
		if filters.Columns != 0 && r.Columns != filters.Columns {
			continue
		}
		if filters.Rows != 0 && r.Rows != filters.Rows {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockRunRepository) GetNextID(ctx context.Context) (string, error) {
	id := run.GenerateRunID(m.nextID)
	m.nextID++
	return id, nil
}

func (m *mockRunRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	m.pruneDays = days
	return m.pruned, nil
}

// mockRandomProvider implements secondary.RandomProvider for testing.
type mockRandomProvider struct {
	entropySeed  uint64
	entropyErr   error
	entropyCalls int
	seeds        []uint64
}

func (m *mockRandomProvider) Seeded(seed uint64) maze.Random {
	m.seeds = append(m.seeds, seed)
	return rand.New(rand.NewPCG(seed, seed))
}

func (m *mockRandomProvider) EntropySeed() (uint64, error) {
	m.entropyCalls++
	return m.entropySeed, m.entropyErr
}

// steppingClock advances by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	t := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func newTestMazeService(repo secondary.RunRepository, rnd *mockRandomProvider) *MazeServiceImpl {
	svc := NewMazeService(repo, rnd)
	svc.now = steppingClock(5 * time.Millisecond)
	return svc
}

func seedPtr(v uint64) *uint64 { return &v }

func TestMazeService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit seed is used verbatim", func(t *testing.T) {
		rnd := &mockRandomProvider{}
		svc := newTestMazeService(newMockRunRepository(), rnd)

		resp, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 4, Rows: 3, Seed: seedPtr(42)})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if resp.Seed != 42 || resp.SeedFromEntropy {
			t.Errorf("Seed = %d (entropy=%v), want 42 from flag", resp.Seed, resp.SeedFromEntropy)
		}
		if rnd.entropyCalls != 0 {
			t.Errorf("EntropySeed called %d times, want 0", rnd.entropyCalls)
		}
		if len(resp.Grid) != 12 {
			t.Errorf("len(Grid) = %d, want 12", len(resp.Grid))
		}
		if resp.Elapsed != 5*time.Millisecond {
			t.Errorf("Elapsed = %v, want 5ms", resp.Elapsed)
		}
		if resp.StartPolicy != "uniform" {
			t.Errorf("StartPolicy = %q, want uniform", resp.StartPolicy)
		}
		if err := maze.Audit(resp.Grid, 4, 3); err != nil {
			t.Errorf("Audit() = %v", err)
		}
	})

	t.Run("missing seed draws from entropy", func(t *testing.T) {
		rnd := &mockRandomProvider{entropySeed: 987654321}
		svc := newTestMazeService(newMockRunRepository(), rnd)

		resp, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 2, Rows: 2})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}

		if !resp.SeedFromEntropy || resp.Seed != 987654321 {
			t.Errorf("Seed = %d (entropy=%v), want 987654321 from entropy", resp.Seed, resp.SeedFromEntropy)
		}
		if len(rnd.seeds) != 1 || rnd.seeds[0] != 987654321 {
			t.Errorf("Seeded calls = %v, want [987654321]", rnd.seeds)
		}
	})

	t.Run("entropy failure aborts", func(t *testing.T) {
		rnd := &mockRandomProvider{entropyErr: errors.New("no entropy")}
		svc := newTestMazeService(newMockRunRepository(), rnd)

		_, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 2, Rows: 2})
		if err == nil || !strings.Contains(err.Error(), "no entropy") {
			t.Fatalf("Generate error = %v, want entropy failure", err)
		}
		if len(rnd.seeds) != 0 {
			t.Error("no source should be created when seeding fails")
		}
	})

	t.Run("same seed reproduces the grid", func(t *testing.T) {
		svc := newTestMazeService(nil, &mockRandomProvider{})

		a, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 9, Rows: 7, Seed: seedPtr(7)})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		b, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 9, Rows: 7, Seed: seedPtr(7)})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if a.Digest != b.Digest || a.Grid.String() != b.Grid.String() {
			t.Errorf("grids differ for the same seed:\n%s\n%s", a.Grid, b.Grid)
		}
	})

	t.Run("invalid dimensions are rejected before seeding", func(t *testing.T) {
		tests := []struct {
			name    string
			columns int
			rows    int
			wantErr string
		}{
			{name: "zero columns", columns: 0, rows: 3, wantErr: "columns must be a positive integer"},
			{name: "zero rows", columns: 3, rows: 0, wantErr: "rows must be a positive integer"},
			{name: "negative columns", columns: -4, rows: 3, wantErr: "columns must be a positive integer"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rnd := &mockRandomProvider{}
				svc := newTestMazeService(newMockRunRepository(), rnd)

				_, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: tt.columns, Rows: tt.rows})
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Generate error = %v, want %q", err, tt.wantErr)
				}
				if rnd.entropyCalls != 0 || len(rnd.seeds) != 0 {
					t.Error("random provider should not be touched for invalid input")
				}
			})
		}
	})

	t.Run("unknown start policy is rejected", func(t *testing.T) {
		svc := newTestMazeService(nil, &mockRandomProvider{})

		_, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 2, Rows: 2, StartPolicy: "sideways"})
		if err == nil || !strings.Contains(err.Error(), `unknown start policy "sideways"`) {
			t.Fatalf("Generate error = %v, want unknown start policy", err)
		}
	})

	t.Run("check passes for generated grids", func(t *testing.T) {
		svc := newTestMazeService(nil, &mockRandomProvider{})

		resp, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 20, Rows: 15, Seed: seedPtr(1), Check: true, StartPolicy: "legacy"})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if resp.StartPolicy != "legacy" {
			t.Errorf("StartPolicy = %q, want legacy", resp.StartPolicy)
		}
	})
}

func TestMazeService_GenerateRecording(t *testing.T) {
	ctx := context.Background()

	t.Run("records run when asked", func(t *testing.T) {
		repo := newMockRunRepository()
		svc := newTestMazeService(repo, &mockRandomProvider{})

		resp, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 3, Rows: 2, Seed: seedPtr(11), Record: true})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if resp.RunID != "RUN-001" {
			t.Fatalf("RunID = %q, want RUN-001", resp.RunID)
		}
		if resp.RecordErr != nil {
			t.Fatalf("RecordErr = %v", resp.RecordErr)
		}

		rec := repo.runs["RUN-001"]
		if rec == nil {
			t.Fatal("run was not stored")
		}
		if rec.Columns != 3 || rec.Rows != 2 || rec.Cells != 6 || rec.Seed != 11 {
			t.Errorf("stored run = %+v", rec)
		}
		if rec.Digest != resp.Digest {
			t.Errorf("stored digest = %q, want %q", rec.Digest, resp.Digest)
		}
		if rec.ElapsedNanos != (5 * time.Millisecond).Nanoseconds() {
			t.Errorf("ElapsedNanos = %d", rec.ElapsedNanos)
		}
	})

	t.Run("does not record without Record", func(t *testing.T) {
		repo := newMockRunRepository()
		svc := newTestMazeService(repo, &mockRandomProvider{})

		resp, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 3, Rows: 2, Seed: seedPtr(11)})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if resp.RunID != "" || len(repo.runs) != 0 {
			t.Errorf("run recorded unexpectedly: %q", resp.RunID)
		}
	})

	t.Run("record failure keeps the grid", func(t *testing.T) {
		repo := newMockRunRepository()
		repo.createErr = errors.New("disk full")
		svc := newTestMazeService(repo, &mockRandomProvider{})

		resp, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 3, Rows: 2, Seed: seedPtr(11), Record: true})
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if resp.RecordErr == nil || !strings.Contains(resp.RecordErr.Error(), "disk full") {
			t.Errorf("RecordErr = %v, want disk full", resp.RecordErr)
		}
		if len(resp.Grid) != 6 {
			t.Errorf("len(Grid) = %d, want 6", len(resp.Grid))
		}
	})
}

func TestMazeService_Replay(t *testing.T) {
	ctx := context.Background()
	repo := newMockRunRepository()
	svc := newTestMazeService(repo, &mockRandomProvider{entropySeed: 555})

	resp, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 8, Rows: 5, StartPolicy: "legacy", Record: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	t.Run("replay matches the recorded digest", func(t *testing.T) {
		replay, err := svc.Replay(ctx, resp.RunID)
		if err != nil {
			t.Fatalf("Replay failed: %v", err)
		}
		if !replay.Matches {
			t.Errorf("Matches = false, digests %q vs %q", replay.Digest, replay.Run.Digest)
		}
		if replay.Grid.String() != resp.Grid.String() {
			t.Errorf("replayed grid = %s, want %s", replay.Grid, resp.Grid)
		}
	})

	t.Run("tampered digest is reported", func(t *testing.T) {
		repo.runs[resp.RunID].Digest = "0000000000000000"

		replay, err := svc.Replay(ctx, resp.RunID)
		if err != nil {
			t.Fatalf("Replay failed: %v", err)
		}
		if replay.Matches {
			t.Error("Matches = true for tampered digest")
		}
	})

	t.Run("unknown run", func(t *testing.T) {
		_, err := svc.Replay(ctx, "RUN-999")
		if err == nil || !strings.Contains(err.Error(), "not found") {
			t.Fatalf("Replay error = %v, want not found", err)
		}
	})
}

func TestMazeService_ListAndPrune(t *testing.T) {
	ctx := context.Background()
	repo := newMockRunRepository()
	svc := newTestMazeService(repo, &mockRandomProvider{})

	for _, d := range [][2]int{{2, 2}, {3, 3}, {2, 2}} {
		if _, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: d[0], Rows: d[1], Seed: seedPtr(1), Record: true}); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
	}

	runs, err := svc.ListRuns(ctx, primary.RunFilters{Columns: 2, Rows: 2})
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	if runs[0].ID != "RUN-003" || runs[0].Elapsed != 5*time.Millisecond {
		t.Errorf("runs[0] = %+v", runs[0])
	}

	repo.pruned = 2
	count, err := svc.PruneRuns(ctx, 30)
	if err != nil {
		t.Fatalf("PruneRuns failed: %v", err)
	}
	if count != 2 || repo.pruneDays != 30 {
		t.Errorf("PruneRuns = %d (days %d), want 2 (days 30)", count, repo.pruneDays)
	}

	if _, err := svc.PruneRuns(ctx, -1); err == nil {
		t.Error("PruneRuns(-1) should fail")
	}
}

func TestMazeService_HistoryDisabled(t *testing.T) {
	ctx := context.Background()
	svc := newTestMazeService(nil, &mockRandomProvider{})

	resp, err := svc.Generate(ctx, primary.GenerateMazeRequest{Columns: 2, Rows: 2, Seed: seedPtr(3), Record: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.RunID != "" || resp.RecordErr != nil {
		t.Errorf("RunID = %q, RecordErr = %v, want neither", resp.RunID, resp.RecordErr)
	}

	if _, err := svc.ListRuns(ctx, primary.RunFilters{}); err == nil {
		t.Error("ListRuns should fail when history is disabled")
	}
	if _, err := svc.GetRun(ctx, "RUN-001"); err == nil {
		t.Error("GetRun should fail when history is disabled")
	}
}
