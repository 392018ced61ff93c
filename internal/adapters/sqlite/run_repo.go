// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/example/maze/internal/core/run"
	"github.com/example/maze/internal/ports/secondary"
)

// RunRepository implements secondary.RunRepository with SQLite.
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new SQLite run repository.
func NewRunRepository(db *sql.DB) *RunRepository {
	return &RunRepository{db: db}
}

const runColumns = `id, grid_columns, grid_rows, seed, seed_from_entropy, start_policy, cells, digest, elapsed_ns, created_at`

// Create persists a new run.
func (r *RunRepository) Create(ctx context.Context, rec *secondary.RunRecord) error {
	startPolicy := rec.StartPolicy
	if startPolicy == "" {
		startPolicy = "uniform"
	}

	// go-sqlite3 rejects uint64 values with the high bit set, so seeds are stored as text.
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO runs (id, grid_columns, grid_rows, seed, seed_from_entropy, start_policy, cells, digest, elapsed_ns) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Columns,
		rec.Rows,
		strconv.FormatUint(rec.Seed, 10),
		rec.SeedFromEntropy,
		startPolicy,
		rec.Cells,
		rec.Digest,
		rec.ElapsedNanos,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetByID retrieves a run by its ID.
func (r *RunRepository) GetByID(ctx context.Context, id string) (*secondary.RunRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id)

	record, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("run %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return record, nil
}

// List retrieves runs matching the given filters, newest first.
func (r *RunRepository) List(ctx context.Context, filters secondary.RunFilters) ([]*secondary.RunRecord, error) {
	query := `SELECT ` + runColumns + ` FROM runs WHERE 1=1`
	args := []any{}

	if filters.Columns > 0 {
		query += " AND grid_columns = ?"
		args = append(args, filters.Columns)
	}

	if filters.Rows > 0 {
		query += " AND grid_rows = ?"
		args = append(args, filters.Rows)
	}

	query += " ORDER BY created_at DESC, CAST(SUBSTR(id, 5) AS INTEGER) DESC"

	if filters.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filters.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*secondary.RunRecord
	for rows.Next() {
		record, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, record)
	}

	return runs, rows.Err()
}

// GetNextID returns the next available run ID.
func (r *RunRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	prefixLen := len("RUN-") + 1
	err := r.db.QueryRowContext(ctx,
		fmt.Sprintf("SELECT COALESCE(MAX(CAST(SUBSTR(id, %d) AS INTEGER)), 0) FROM runs", prefixLen),
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next run ID: %w", err)
	}

	return run.GenerateRunID(maxID), nil
}

// PruneOlderThan deletes runs older than the given number of days.
func (r *RunRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM runs WHERE created_at < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(s rowScanner) (*secondary.RunRecord, error) {
	var (
		seed      string
		createdAt time.Time
	)

	record := &secondary.RunRecord{}
	err := s.Scan(&record.ID,
		&record.Columns,
		&record.Rows,
		&seed,
		&record.SeedFromEntropy,
		&record.StartPolicy,
		&record.Cells,
		&record.Digest,
		&record.ElapsedNanos,
		&createdAt)
	if err != nil {
		return nil, err
	}

	record.Seed, err = strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("run %s has invalid seed %q: %w", record.ID, seed, err)
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// Ensure RunRepository implements the interface
var _ secondary.RunRepository = (*RunRepository)(nil)
