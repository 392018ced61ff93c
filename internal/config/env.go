package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file.
const (
	EnvDBPath      = "MAZE_DB_PATH"
	EnvHistory     = "MAZE_HISTORY"
	EnvStartPolicy = "MAZE_START_POLICY"
)

// ApplyEnv loads dir/.env when present (without replacing variables already set)
// and applies MAZE_* overrides to cfg.
func ApplyEnv(cfg *Config, dir string) error {
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if v, ok := os.LookupEnv(EnvDBPath); ok && v != "" {
		cfg.DBPath = v
	}

	if v, ok := os.LookupEnv(EnvHistory); ok && v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("environment variable %s must be a boolean: %w", EnvHistory, err)
		}
		cfg.DisableHistory = !enabled
	}

	if v, ok := os.LookupEnv(EnvStartPolicy); ok && v != "" {
		cfg.StartPolicy = v
	}

	return nil
}
