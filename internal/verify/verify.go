// Package verify cross-checks a heuristic-guided search against an
// optimal oracle to surface inadmissible heuristics.
package verify

import (
	"log/slog"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/harness"
	"github.com/SeamusWaldron/pocketcube/internal/heuristic"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// BestFirst is a heuristic-guided search returning a path and the number
// of expanded configurations.
type BestFirst func(c cube.Cube, h heuristic.Evaluator) ([]types.Move, int)

// Oracle is a search guaranteed to return a shortest path.
type Oracle func(c cube.Cube) ([]types.Move, int)

// DefaultTrials is the number of passes over the battery. Repetition
// exposes nondeterministic tie-breaking in the searches under test.
const DefaultTrials = 100

// Verdict classifies a trial.
type Verdict int

const (
	// Agree means both searches returned paths of equal length.
	Agree Verdict = iota
	// LongerThanOracle means the guided search missed the optimum, which
	// a correct best-first search only does with an inadmissible heuristic.
	LongerThanOracle
	// ShorterThanOracle means the guided search beat the oracle, so one
	// of the two searches is broken.
	ShorterThanOracle
)

func (v Verdict) String() string {
	switch v {
	case Agree:
		return "agree"
	case LongerThanOracle:
		return "longer than oracle"
	case ShorterThanOracle:
		return "shorter than oracle"
	default:
		return "unknown"
	}
}

// Counterexample is the first trial on which the searches disagreed.
type Counterexample struct {
	Trial        int
	Case         harness.Case
	Verdict      Verdict
	Path         []types.Move
	OraclePath   []types.Move
	Expanded     int
	OracleExpand int
}

// Result is the outcome of a verification run.
type Result struct {
	Admissible     bool
	Trials         int
	Cases          int
	Counterexample *Counterexample
}

// Option configures a verification run.
type Option func(*config)

type config struct {
	trials  int
	battery []harness.Case
	logger  *slog.Logger
}

// WithTrials sets the number of passes over the battery.
func WithTrials(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.trials = n
		}
	}
}

// WithBattery replaces the default battery.
func WithBattery(cases []harness.Case) Option {
	return func(c *config) {
		c.battery = cases
	}
}

// WithLogger sets the logger that reports counterexamples.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// Check runs bestFirst and oracle over every battery case trials times
// and stops at the first disagreement.
func Check(bestFirst BestFirst, oracle Oracle, h heuristic.Evaluator, opts ...Option) Result {
	cfg := &config{
		trials:  DefaultTrials,
		battery: harness.DefaultBattery(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	res := Result{Admissible: true, Cases: len(cfg.battery)}
	for trial := 0; trial < cfg.trials; trial++ {
		res.Trials = trial + 1
		for _, tc := range cfg.battery {
			start := tc.Cube()
			path, expanded := bestFirst(start, h)
			oraclePath, oracleExpanded := oracle(start)

			verdict := Agree
			switch {
			case len(path) < len(oraclePath):
				verdict = ShorterThanOracle
			case len(path) > len(oraclePath):
				verdict = LongerThanOracle
			}
			if verdict == Agree {
				continue
			}

			res.Admissible = false
			res.Counterexample = &Counterexample{
				Trial:        trial,
				Case:         tc,
				Verdict:      verdict,
				Path:         path,
				OraclePath:   oraclePath,
				Expanded:     expanded,
				OracleExpand: oracleExpanded,
			}
			cfg.logger.Warn("counterexample found",
				"trial", trial,
				"case", tc.Index,
				"scramble", tc.Scramble,
				"verdict", verdict.String(),
				"path_length", len(path),
				"oracle_length", len(oraclePath))
			return res
		}
	}
	cfg.logger.Debug("no counterexample", "trials", res.Trials, "cases", res.Cases)
	return res
}

// Verify reports whether no counterexample was found.
func Verify(bestFirst BestFirst, oracle Oracle, h heuristic.Evaluator, opts ...Option) bool {
	return Check(bestFirst, oracle, h, opts...).Admissible
}
