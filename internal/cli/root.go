// Package cli implements the command-line interface for pocketcube.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/pocketcube/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "pocketcube",
	Short: "Pocket cube heuristic search workbench",
	Long: `pocketcube - build pattern databases, evaluate heuristics and solve
the 2x2x2 pocket cube with A*, breadth-first and bidirectional search.

Runs are recorded in a local SQLite database and can be listed with
'pocketcube history'.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.pocketcube/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Run history database path (default: ~/.pocketcube/runs.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	loaded, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	logger.Debug("config loaded", "path", path, "db_path", cfg.DBPath, "builder", cfg.Builder)
	return nil
}
