// Package search implements the searches that consume heuristics: a
// breadth-first optimal oracle, A*, and bidirectional breadth-first
// search, together with the primitives they share.
package search

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// ErrKeyNotFound is returned when a key is missing from a discovered map.
var ErrKeyNotFound = errors.New("search: key not discovered")

// Neighbor is a configuration reached by one move.
type Neighbor struct {
	Cube cube.Cube
	Move types.Move
}

// Neighbors returns one entry per move in types.AllMoves. Nothing is
// filtered or deduplicated; visited bookkeeping is the caller's job.
func Neighbors(c cube.Cube) []Neighbor {
	out := make([]Neighbor, 0, len(types.AllMoves))
	for _, m := range types.AllMoves {
		out = append(out, Neighbor{Cube: c.Apply(m), Move: m})
	}
	return out
}

// Record describes how a configuration was first reached from its
// frontier's root.
type Record struct {
	Parent cube.Key
	Move   types.Move
	Depth  int
	// Root marks the frontier root, which has no parent.
	Root bool
}

// Discovered maps every visited configuration to its predecessor record.
type Discovered map[cube.Key]Record

// NewDiscovered returns a map holding only root.
func NewDiscovered(root cube.Cube) Discovered {
	return Discovered{root.Key(): {Root: true}}
}

// Add records child as reached from parent by move, unless child is
// already known. It reports whether the record was added.
func (d Discovered) Add(parent cube.Key, child cube.Key, move types.Move) bool {
	if _, ok := d[child]; ok {
		return false
	}
	d[child] = Record{Parent: parent, Move: move, Depth: d[parent].Depth + 1}
	return true
}

// ExpandLayer expands every configuration of frontier and returns the
// newly discovered ones, the next layer.
func (d Discovered) ExpandLayer(frontier []cube.Cube) []cube.Cube {
	var next []cube.Cube
	for _, c := range frontier {
		key := c.Key()
		for _, n := range Neighbors(c) {
			if d.Add(key, n.Cube.Key(), n.Move) {
				next = append(next, n.Cube)
			}
		}
	}
	return next
}

// Path walks parent links from target back to the root and returns the
// root-to-target move sequence.
func Path(target cube.Key, d Discovered) ([]types.Move, error) {
	rec, ok := d[target]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, target)
	}

	var path []types.Move
	for !rec.Root {
		// A well-formed map never holds a chain longer than its size.
		if len(path) > len(d) {
			return nil, fmt.Errorf("search: parent chain of %s does not reach a root", target)
		}
		path = append(path, rec.Move)
		parent := rec.Parent
		if rec, ok = d[parent]; !ok {
			return nil, fmt.Errorf("%w: parent %s", ErrKeyNotFound, parent)
		}
	}
	return lo.Reverse(path), nil
}

// Meet returns some key present in both maps. Which one is unspecified;
// use BestMeet when the combined depth matters.
func Meet(a, b Discovered) (cube.Key, bool) {
	if len(b) < len(a) {
		a, b = b, a
	}
	for key := range a {
		if _, ok := b[key]; ok {
			return key, true
		}
	}
	return cube.Key{}, false
}

// BestMeet returns the common key with the smallest sum of depths in a
// and b. Ties go to the smallest key so the result is deterministic.
func BestMeet(a, b Discovered) (cube.Key, bool) {
	if len(b) < len(a) {
		a, b = b, a
	}
	var best cube.Key
	bestDepth := -1
	for key, ra := range a {
		rb, ok := b[key]
		if !ok {
			continue
		}
		total := ra.Depth + rb.Depth
		if bestDepth < 0 || total < bestDepth || (total == bestDepth && keyLess(key, best)) {
			best, bestDepth = key, total
		}
	}
	return best, bestDepth >= 0
}

func keyLess(a, b cube.Key) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
