// Package pdb builds pattern databases: exact move distances from the
// solved pocket cube for every configuration within a depth bound.
package pdb

import (
	"errors"

	"github.com/samber/lo"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
)

// ErrNegativeDepth is returned when a build is requested with a negative
// depth bound.
var ErrNegativeDepth = errors.New("pdb: negative depth bound")

// ErrUnknownBuilder is returned by BuildWith for an unrecognised builder name.
var ErrUnknownBuilder = errors.New("pdb: unknown builder")

// Database maps canonical keys to their distance from the goal. It is
// read-only once built and safe for concurrent readers.
type Database struct {
	dist     map[cube.Key]int
	maxDepth int
}

func newDatabase(maxDepth int) *Database {
	return &Database{
		dist:     make(map[cube.Key]int),
		maxDepth: maxDepth,
	}
}

// Lookup returns the recorded distance of key.
func (db *Database) Lookup(key cube.Key) (int, bool) {
	d, ok := db.dist[key]
	return d, ok
}

// Distance returns the recorded distance of c.
func (db *Database) Distance(c cube.Cube) (int, bool) {
	return db.Lookup(c.Key())
}

// Len returns the number of recorded configurations.
func (db *Database) Len() int {
	return len(db.dist)
}

// MaxDepth returns the depth bound the database was built with.
func (db *Database) MaxDepth() int {
	return db.maxDepth
}

// Range calls fn for every entry until fn returns false.
// Iteration order is unspecified.
func (db *Database) Range(fn func(key cube.Key, depth int) bool) {
	for k, d := range db.dist {
		if !fn(k, d) {
			return
		}
	}
}

// Histogram returns the number of configurations at each depth;
// index i holds the count for depth i. Its length follows the deepest
// recorded entry, not the bound, which may exceed the cube's diameter.
func (db *Database) Histogram() []int {
	if len(db.dist) == 0 {
		return nil
	}
	counts := lo.CountValues(lo.Values(db.dist))
	hist := make([]int, lo.Max(lo.Keys(counts))+1)
	for depth, n := range counts {
		hist[depth] = n
	}
	return hist
}
