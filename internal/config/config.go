package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// CurrentVersion is written into newly created config files.
const CurrentVersion = "1"

// Config represents the flat maze configuration
type Config struct {
	Version        string `json:"version"`
	DisableHistory bool   `json:"disable_history,omitempty"` // skip recording runs
	StartPolicy    string `json:"start_policy,omitempty"`    // "uniform" or "legacy"
	DBPath         string `json:"db_path,omitempty"`         // overrides ~/.maze/maze.db
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:     CurrentVersion,
		StartPolicy: "uniform",
	}
}

// Path returns the location of the config file inside dir.
func Path(dir string) string {
	return filepath.Join(dir, ".maze", "config.json")
}

// LoadConfig reads .maze/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func LoadConfig(dir string) (*Config, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Load resolves the effective configuration for dir: the config file when present,
// defaults otherwise, then environment overrides.
func Load(dir string) (*Config, error) {
	cfg, err := LoadConfig(dir)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
	} else if err != nil {
		return nil, err
	}

	if err := ApplyEnv(cfg, dir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	mazeDir := filepath.Join(dir, ".maze")
	if err := os.MkdirAll(mazeDir, 0755); err != nil {
		return fmt.Errorf("failed to create .maze dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(Path(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
