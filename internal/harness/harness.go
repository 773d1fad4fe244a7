// Package harness runs solvers over a battery of scrambles and records
// pass/fail, timing, expansion count and path length per case.
package harness

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// DefaultScrambles is the standard test battery.
var DefaultScrambles = []string{
	"R U' R' F' U",
	"F' R U R U F' U'",
	"F U U F' U' R R F' R",
	"U' R U' F' R F F U' F U U",
}

// Case is one scramble of a battery.
type Case struct {
	Index    int
	Scramble string
	Moves    []types.Move
}

// Cube returns the scrambled configuration.
func (c Case) Cube() cube.Cube {
	return cube.New(c.Moves...)
}

// ParseBattery parses every scramble into a Case.
func ParseBattery(scrambles []string) ([]Case, error) {
	cases := make([]Case, 0, len(scrambles))
	for i, s := range scrambles {
		moves, err := types.ParseMoves(s)
		if err != nil {
			return nil, fmt.Errorf("failed to parse case %d %q: %w", i, s, err)
		}
		cases = append(cases, Case{Index: i, Scramble: s, Moves: moves})
	}
	return cases, nil
}

// DefaultBattery returns the parsed DefaultScrambles.
func DefaultBattery() []Case {
	cases, err := ParseBattery(DefaultScrambles)
	if err != nil {
		panic(err)
	}
	return cases
}

// Solver finds a move sequence solving c and reports its expansion count.
type Solver func(c cube.Cube) ([]types.Move, int)

// CaseResult is the report of one case.
type CaseResult struct {
	Index      int
	Scramble   string
	Passed     bool
	Elapsed    time.Duration
	Expanded   int
	PathLength int
	Path       []types.Move
}

// Report is the outcome of running a solver over a battery.
type Report struct {
	Cases   []CaseResult
	Passed  bool
	Elapsed time.Duration
}

// PassedCount returns the number of passing cases.
func (r Report) PassedCount() int {
	n := 0
	for _, c := range r.Cases {
		if c.Passed {
			n++
		}
	}
	return n
}

// Run solves every case and checks that applying the returned path to
// the scramble yields the solved cube.
func Run(solve Solver, cases []Case, logger *slog.Logger) Report {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	report := Report{Passed: true}
	start := time.Now()
	for _, tc := range cases {
		c := tc.Cube()
		caseStart := time.Now()
		path, expanded := solve(c)
		elapsed := time.Since(caseStart)

		passed := c.ApplyMoves(path).IsSolved()
		if !passed {
			report.Passed = false
		}
		report.Cases = append(report.Cases, CaseResult{
			Index:      tc.Index,
			Scramble:   tc.Scramble,
			Passed:     passed,
			Elapsed:    elapsed,
			Expanded:   expanded,
			PathLength: len(path),
			Path:       path,
		})
		logger.Debug("case solved",
			"case", tc.Index,
			"passed", passed,
			"elapsed", elapsed,
			"expanded", expanded,
			"path_length", len(path))
	}
	report.Elapsed = time.Since(start)
	return report
}
