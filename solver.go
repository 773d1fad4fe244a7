package pocketcube

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SeamusWaldron/pocketcube/internal/harness"
	"github.com/SeamusWaldron/pocketcube/internal/heuristic"
	"github.com/SeamusWaldron/pocketcube/internal/pdb"
	"github.com/SeamusWaldron/pocketcube/internal/search"
	"github.com/SeamusWaldron/pocketcube/internal/verify"
)

// Solution is the result of one solve.
type Solution struct {
	Moves    []Move
	Expanded int
	Elapsed  time.Duration
}

// Solver runs A* guided by a database-backed heuristic.
type Solver struct {
	db       *pdb.Database
	strategy heuristic.Strategy
	logger   *slog.Logger
}

// NewSolver builds the pattern database and resolves the fallback
// heuristic. Building is the expensive step; reuse the Solver.
func NewSolver(ctx context.Context, opts ...Option) (*Solver, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	start := time.Now()
	db, err := pdb.BuildWith(ctx, cfg.builder, cfg.depth,
		pdb.WithLogger(cfg.logger), pdb.WithWorkers(cfg.workers))
	if err != nil {
		return nil, fmt.Errorf("failed to build database: %w", err)
	}
	cfg.logger.Info("database built",
		"builder", cfg.builder,
		"depth", cfg.depth,
		"entries", db.Len(),
		"elapsed", time.Since(start))

	strategy, err := heuristic.Database(db, cfg.heuristic)
	if err != nil {
		return nil, err
	}

	return &Solver{db: db, strategy: strategy, logger: cfg.logger}, nil
}

// Heuristic returns the name of the guiding strategy.
func (s *Solver) Heuristic() string {
	return s.strategy.Name
}

// Admissible reports whether the guiding strategy never overestimates.
func (s *Solver) Admissible() bool {
	return s.strategy.Admissible
}

// DatabaseSize returns the number of configurations with a known distance.
func (s *Solver) DatabaseSize() int {
	return s.db.Len()
}

// Distance returns the exact distance of c when it lies within the
// database bound.
func (s *Solver) Distance(c Cube) (int, bool) {
	return s.db.Distance(c)
}

// SolveCube finds a path from c to the solved cube.
func (s *Solver) SolveCube(c Cube) (Solution, error) {
	start := time.Now()
	r := search.AStar(c, s.strategy)
	sol := Solution{Moves: r.Path, Expanded: r.Expanded, Elapsed: time.Since(start)}
	if !r.Solved {
		return sol, ErrUnsolved
	}
	s.logger.Debug("solved",
		"heuristic", s.strategy.Name,
		"length", len(sol.Moves),
		"expanded", sol.Expanded,
		"elapsed", sol.Elapsed)
	return sol, nil
}

// Solve parses scramble, applies it to the solved cube and solves the
// result.
func (s *Solver) Solve(scramble string) (Solution, error) {
	moves, err := ParseMoves(scramble)
	if err != nil {
		return Solution{}, fmt.Errorf("failed to parse scramble: %w", err)
	}
	return s.SolveCube(NewCube(moves...))
}

// Verify cross-checks the solver against breadth-first search over the
// standard battery and reports whether no counterexample was found.
func (s *Solver) Verify(trials int) bool {
	return verify.Verify(search.AStarFunc, search.BFSFunc, s.strategy,
		verify.WithTrials(trials), verify.WithLogger(s.logger))
}

// Test runs the solver over the standard battery.
func (s *Solver) Test() harness.Report {
	return harness.Run(func(c Cube) ([]Move, int) {
		sol, _ := s.SolveCube(c)
		return sol.Moves, sol.Expanded
	}, harness.DefaultBattery(), s.logger)
}
