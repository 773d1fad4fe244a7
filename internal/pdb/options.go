package pdb

import (
	"log/slog"
	"runtime"
)

// Option configures a database build.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	workers int
}

func defaultConfig() *config {
	return &config{
		logger:  slog.New(slog.DiscardHandler),
		workers: runtime.GOMAXPROCS(0),
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger used for build progress.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithWorkers sets the number of goroutines BuildParallel uses per layer.
// Values below 1 keep the default of GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}
