package pocketcube

import "log/slog"

// Option configures a Solver.
type Option func(*config)

type config struct {
	depth     int
	builder   string
	workers   int
	heuristic string
	logger    *slog.Logger
}

func defaultConfig() *config {
	return &config{
		depth:     7,
		builder:   "bfs",
		heuristic: "manhattan",
		logger:    slog.New(slog.DiscardHandler),
	}
}

// WithDatabaseDepth sets the depth bound of the pattern database.
// Configurations beyond it are scored by the fallback heuristic.
func WithDatabaseDepth(depth int) Option {
	return func(c *config) {
		c.depth = depth
	}
}

// WithBuilder selects the database builder: "lifo", "bfs" (default) or
// "parallel".
func WithBuilder(name string) Option {
	return func(c *config) {
		c.builder = name
	}
}

// WithWorkers sets the goroutine count of the parallel builder.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithHeuristic names the fallback strategy for configurations missing
// from the database. The default is "manhattan".
func WithHeuristic(name string) Option {
	return func(c *config) {
		c.heuristic = name
	}
}

// WithLogger sets the logger for build progress and search summaries.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
