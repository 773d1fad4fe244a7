// Package config loads the pocketcube YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/pocketcube/internal/harness"
	"github.com/SeamusWaldron/pocketcube/internal/heuristic"
	"github.com/SeamusWaldron/pocketcube/internal/pdb"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the tunable settings of the CLI.
type Config struct {
	DatabaseDepth int      `yaml:"database_depth"`
	Builder       string   `yaml:"builder"`
	Workers       int      `yaml:"workers"`
	Trials        int      `yaml:"trials"`
	Heuristic     string   `yaml:"heuristic"`
	DBPath        string   `yaml:"db_path"`
	Battery       []string `yaml:"battery"`
}

// Default returns the built-in configuration.
func Default() Config {
	dbPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".pocketcube", "runs.db")
	}
	return Config{
		DatabaseDepth: 7,
		Builder:       pdb.BuilderBFS,
		Workers:       0,
		Trials:        100,
		Heuristic:     "manhattan",
		DBPath:        dbPath,
		Battery:       slices.Clone(harness.DefaultScrambles),
	}
}

// DefaultPath returns ~/.pocketcube/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".pocketcube", "config.yaml"), nil
}

// Load reads the file at path over the defaults. A missing file yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode the config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.DatabaseDepth < 0 {
		return fmt.Errorf("%w: database_depth %d is negative", ErrInvalidConfig, c.DatabaseDepth)
	}
	if !slices.Contains(pdb.Builders, c.Builder) {
		return fmt.Errorf("%w: unknown builder %q", ErrInvalidConfig, c.Builder)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d is negative", ErrInvalidConfig, c.Workers)
	}
	if c.Trials <= 0 {
		return fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidConfig, c.Trials)
	}
	if _, err := heuristic.Lookup(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := harness.ParseBattery(c.Battery); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Cases parses the configured battery.
func (c Config) Cases() ([]harness.Case, error) {
	return harness.ParseBattery(c.Battery)
}
