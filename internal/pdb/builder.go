package pdb

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// Builder names accepted by BuildWith.
const (
	BuilderLIFO     = "lifo"
	BuilderBFS      = "bfs"
	BuilderParallel = "parallel"
)

// Builders lists the accepted builder names.
var Builders = []string{BuilderLIFO, BuilderBFS, BuilderParallel}

// BuildWith dispatches to the builder with the given name.
func BuildWith(ctx context.Context, builder string, maxDepth int, opts ...Option) (*Database, error) {
	switch builder {
	case BuilderLIFO:
		return Build(maxDepth, opts...)
	case BuilderBFS, "":
		return BuildBFS(maxDepth, opts...)
	case BuilderParallel:
		return BuildParallel(ctx, maxDepth, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBuilder, builder)
	}
}

func checkDepth(maxDepth int) error {
	if maxDepth < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDepth, maxDepth)
	}
	return nil
}

type stackItem struct {
	c     cube.Cube
	depth int
}

// Build constructs the database by relaxation over a LIFO work list.
//
// The first depth recorded for a key need not be minimal: a key is
// overwritten whenever it is reached again at a strictly smaller depth,
// and only then re-expanded, so every recorded value converges to the
// true distance for all configurations within maxDepth.
func Build(maxDepth int, opts ...Option) (*Database, error) {
	if err := checkDepth(maxDepth); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	start := time.Now()

	db := newDatabase(maxDepth)
	stack := []stackItem{{c: cube.Goal(), depth: 0}}
	expansions := 0

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := item.c.Key()
		if recorded, ok := db.dist[key]; ok && recorded <= item.depth {
			continue
		}
		db.dist[key] = item.depth

		if item.depth < maxDepth {
			expansions++
			for _, m := range types.AllMoves {
				stack = append(stack, stackItem{c: item.c.Apply(m), depth: item.depth + 1})
			}
		}
	}

	cfg.logger.Debug("pattern database built",
		"builder", BuilderLIFO,
		"max_depth", maxDepth,
		"states", db.Len(),
		"expansions", expansions,
		"elapsed", time.Since(start))
	return db, nil
}

// BuildBFS constructs the database with a breadth-first traversal. The
// first visit of every key is at its minimal depth, so no key is ever
// re-expanded.
func BuildBFS(maxDepth int, opts ...Option) (*Database, error) {
	if err := checkDepth(maxDepth); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	start := time.Now()

	db := newDatabase(maxDepth)
	goal := cube.Goal()
	db.dist[goal.Key()] = 0
	queue := []cube.Cube{goal}

	for head := 0; head < len(queue); head++ {
		c := queue[head]
		depth := db.dist[c.Key()]
		if depth >= maxDepth {
			continue
		}
		for _, m := range types.AllMoves {
			next := c.Apply(m)
			key := next.Key()
			if _, seen := db.dist[key]; seen {
				continue
			}
			db.dist[key] = depth + 1
			queue = append(queue, next)
		}
	}

	cfg.logger.Debug("pattern database built",
		"builder", BuilderBFS,
		"max_depth", maxDepth,
		"states", db.Len(),
		"elapsed", time.Since(start))
	return db, nil
}

// BuildParallel constructs the database one depth layer at a time. Each
// layer's frontier is split among workers that only read the database;
// their candidates are merged on the calling goroutine once every worker
// has finished, so layer k is final before layer k+1 is expanded.
func BuildParallel(ctx context.Context, maxDepth int, opts ...Option) (*Database, error) {
	if err := checkDepth(maxDepth); err != nil {
		return nil, err
	}
	cfg := newConfig(opts)
	start := time.Now()

	db := newDatabase(maxDepth)
	goal := cube.Goal()
	db.dist[goal.Key()] = 0
	frontier := []cube.Cube{goal}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		size := (len(frontier) + cfg.workers - 1) / cfg.workers
		chunks := lo.Chunk(frontier, size)
		candidates := make([][]cube.Cube, len(chunks))

		g, gctx := errgroup.WithContext(ctx)
		for i, chunk := range chunks {
			g.Go(func() error {
				out := make([]cube.Cube, 0, len(chunk)*len(types.AllMoves))
				for j, c := range chunk {
					if j%1024 == 0 {
						if err := gctx.Err(); err != nil {
							return err
						}
					}
					for _, m := range types.AllMoves {
						next := c.Apply(m)
						if _, seen := db.dist[next.Key()]; !seen {
							out = append(out, next)
						}
					}
				}
				candidates[i] = out
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		var next []cube.Cube
		for _, out := range candidates {
			for _, c := range out {
				key := c.Key()
				if _, seen := db.dist[key]; seen {
					continue
				}
				db.dist[key] = depth + 1
				next = append(next, c)
			}
		}
		cfg.logger.Debug("layer merged", "depth", depth+1, "states", len(next))
		frontier = next
	}

	cfg.logger.Debug("pattern database built",
		"builder", BuilderParallel,
		"max_depth", maxDepth,
		"workers", cfg.workers,
		"states", db.Len(),
		"elapsed", time.Since(start))
	return db, nil
}
