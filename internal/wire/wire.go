// Package wire provides dependency injection for the maze application.
// It creates singleton services with lazy initialization.
package wire

import (
	"io"
	"log"
	"os"
	"sync"

	cliadapter "github.com/example/maze/internal/adapters/cli"
	"github.com/example/maze/internal/adapters/random"
	"github.com/example/maze/internal/adapters/sqlite"
	"github.com/example/maze/internal/app"
	"github.com/example/maze/internal/config"
	"github.com/example/maze/internal/db"
	"github.com/example/maze/internal/ports/primary"
	"github.com/example/maze/internal/ports/secondary"
)

var (
	cfg         *config.Config
	mazeService primary.MazeService
	once        sync.Once
)

// Config returns the effective configuration for the current directory.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatalf("failed to get working directory: %v", err)
	}

	cfg, err = config.Load(cwd)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.DBPath != "" {
		db.SetPath(cfg.DBPath)
	}

	// History is optional: without a database the service still generates.
	var runRepo secondary.RunRepository
	if !cfg.DisableHistory {
		database, err := db.GetDB()
		if err != nil {
			log.Printf("warning: run history unavailable: %v", err)
		} else {
			runRepo = sqlite.NewRunRepository(database)
		}
	}

	mazeService = app.NewMazeService(runRepo, random.NewProvider())
}

// MazeAdapter returns a new MazeAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func MazeAdapter() *cliadapter.MazeAdapter {
	return MazeAdapterWithOutput(os.Stdout)
}

// MazeAdapterWithOutput returns a new MazeAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func MazeAdapterWithOutput(out io.Writer) *cliadapter.MazeAdapter {
	once.Do(initServices)
	return cliadapter.NewMazeAdapter(mazeService, out)
}
