package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_runs_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_start_policy_to_runs",
		Up:      migrationV2,
	},
}

// RunMigrations applies every migration newer than the recorded schema version.
func RunMigrations(db *sql.DB) error {
	if err := createVersionTable(db); err != nil {
		return err
	}

	// Get current schema version
	var currentVersion int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 creates the runs table as first released (uniform starts only)
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			grid_columns INTEGER NOT NULL CHECK(grid_columns > 0),
			grid_rows INTEGER NOT NULL CHECK(grid_rows > 0),
			seed TEXT NOT NULL,
			seed_from_entropy INTEGER NOT NULL DEFAULT 0,
			cells INTEGER NOT NULL,
			digest TEXT NOT NULL,
			elapsed_ns INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create runs table: %w", err)
	}

	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_dimensions ON runs(grid_columns, grid_rows)`)
	if err != nil {
		return fmt.Errorf("failed to create runs index: %w", err)
	}
	_, err = tx.Exec(`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at)`)
	if err != nil {
		return fmt.Errorf("failed to create runs index: %w", err)
	}
	return nil
}

// migrationV2 records which start range produced each run.
// Existing rows predate the legacy policy and are all uniform.
func migrationV2(tx *sql.Tx) error {
	_, err := tx.Exec(`
		ALTER TABLE runs ADD COLUMN start_policy TEXT NOT NULL CHECK(start_policy IN ('uniform', 'legacy')) DEFAULT 'uniform'
	`)
	if err != nil {
		return fmt.Errorf("failed to add start_policy column: %w", err)
	}
	return nil
}
