// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the SINGLE POINT where the database schema is loaded for tests.
// All test setup functions use db.GetSchemaSQL() to ensure tests run against
// the authoritative schema, preventing drift between test and production.
package sqlite_test

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/maze/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection to :memory: is a separate database.
	testDB.SetMaxOpenConns(1)

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedRun inserts a run with the given dimensions and age and returns its ID.
func seedRun(t *testing.T, db *sql.DB, id string, columns, rows int, ageDays int) string {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO runs (id, grid_columns, grid_rows, seed, cells, digest, elapsed_ns, created_at)
		 VALUES (?, ?, ?, '1', ?, 'feedfacefeedface', 1000, datetime('now', ?))`,
		id, columns, rows, columns*rows, fmt.Sprintf("-%d days", ageDays),
	)
	if err != nil {
		t.Fatalf("failed to seed run: %v", err)
	}
	return id
}

