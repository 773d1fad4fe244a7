package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/harness"
	"github.com/SeamusWaldron/pocketcube/internal/heuristic"
	"github.com/SeamusWaldron/pocketcube/internal/pdb"
	"github.com/SeamusWaldron/pocketcube/internal/search"
	"github.com/SeamusWaldron/pocketcube/internal/storage"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	passStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Search algorithms selectable with --algo.
const (
	algoAStar = "astar"
	algoBFS   = "bfs"
	algoBidir = "bidir"
)

func verdict(passed bool) string {
	if passed {
		return passStyle.Render("PASS")
	}
	return errorStyle.Render("FAIL")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
	}
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}

func openDB() (*storage.DB, error) {
	path := cfg.DBPath
	if path == "" {
		p, err := storage.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// recordRun stores run and its results in the run history.
func recordRun(run storage.Run, results []harness.CaseResult) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	repo := storage.NewRunRepository(db)
	id, err := repo.Create(run)
	if err != nil {
		return "", err
	}
	if len(results) > 0 {
		if err := repo.AddResults(id, results); err != nil {
			return "", err
		}
	}
	logger.Debug("run recorded", "run_id", id, "kind", run.Kind)
	return id, nil
}

func buildDatabase(ctx context.Context, depth int) (*pdb.Database, error) {
	start := time.Now()
	db, err := pdb.BuildWith(ctx, cfg.Builder, depth,
		pdb.WithLogger(logger), pdb.WithWorkers(cfg.Workers))
	if err != nil {
		return nil, fmt.Errorf("failed to build database: %w", err)
	}
	logger.Info("database built", "builder", cfg.Builder, "depth", depth,
		"entries", db.Len(), "elapsed", time.Since(start))
	return db, nil
}

// strategyFlags are shared by commands that take a heuristic.
type strategyFlags struct {
	name    string
	dbDepth int
	plain   bool
}

func (f *strategyFlags) resolve(ctx context.Context) (heuristic.Strategy, error) {
	name := f.name
	if name == "" {
		name = cfg.Heuristic
	}
	if f.plain {
		return heuristic.Lookup(name)
	}

	depth := f.dbDepth
	if depth < 0 {
		depth = cfg.DatabaseDepth
	}
	db, err := buildDatabase(ctx, depth)
	if err != nil {
		return heuristic.Strategy{}, err
	}
	return heuristic.Database(db, name)
}

func solverFor(algo string, h heuristic.Evaluator) (harness.Solver, error) {
	switch algo {
	case algoAStar, "":
		return func(c cube.Cube) ([]types.Move, int) {
			return search.AStarFunc(c, h)
		}, nil
	case algoBFS:
		return search.BFSFunc, nil
	case algoBidir:
		return search.BidirectionalFunc, nil
	default:
		return nil, fmt.Errorf("unknown algorithm %q (want %s, %s or %s)", algo, algoAStar, algoBFS, algoBidir)
	}
}

func scrambleArg(args []string) (string, []types.Move, error) {
	scramble := strings.Join(args, " ")
	moves, err := types.ParseMoves(scramble)
	if err != nil {
		return "", nil, fmt.Errorf("invalid scramble %q: %w", scramble, err)
	}
	return scramble, moves, nil
}
