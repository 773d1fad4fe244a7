package search

import (
	"container/heap"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/heuristic"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// Result is the outcome of a search.
type Result struct {
	Path []types.Move
	// Expanded counts configurations whose neighbours were generated.
	Expanded int
	Solved   bool
}

// BFS is the optimal oracle: a breadth-first search that returns a
// shortest solution.
func BFS(start cube.Cube) Result {
	if start.IsSolved() {
		return Result{Solved: true}
	}

	discovered := NewDiscovered(start)
	queue := []cube.Cube{start}
	expanded := 0

	for head := 0; head < len(queue); head++ {
		c := queue[head]
		key := c.Key()
		expanded++
		for _, n := range Neighbors(c) {
			nk := n.Cube.Key()
			if !discovered.Add(key, nk, n.Move) {
				continue
			}
			if n.Cube.IsSolved() {
				return solution(nk, discovered, expanded)
			}
			queue = append(queue, n.Cube)
		}
	}
	return Result{Expanded: expanded}
}

// solution rebuilds the path to key. A parent chain that does not reach
// the root yields an unsolved result rather than a partial path.
func solution(key cube.Key, d Discovered, expanded int) Result {
	path, err := Path(key, d)
	if err != nil {
		return Result{Expanded: expanded}
	}
	return Result{Path: path, Expanded: expanded, Solved: true}
}

type node struct {
	c   cube.Cube
	g   int
	f   float64
	seq int
}

// openSet orders nodes by f, then by deeper g, then by insertion.
type openSet []*node

func (o openSet) Len() int { return len(o) }

func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	if o[i].g != o[j].g {
		return o[i].g > o[j].g
	}
	return o[i].seq < o[j].seq
}

func (o openSet) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet) Push(x any) { *o = append(*o, x.(*node)) }

func (o *openSet) Pop() any {
	old := *o
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*o = old[:len(old)-1]
	return n
}

// AStar runs best-first search ordered by g + h. A configuration is
// re-opened whenever a cheaper route to it appears, so the returned path
// is optimal for any admissible h, consistent or not.
func AStar(start cube.Cube, h heuristic.Evaluator) Result {
	discovered := NewDiscovered(start)
	best := map[cube.Key]int{start.Key(): 0}
	open := &openSet{{c: start, f: h.Evaluate(start)}}
	seq := 1
	expanded := 0

	for open.Len() > 0 {
		n := heap.Pop(open).(*node)
		key := n.c.Key()
		if n.g > best[key] {
			continue
		}
		if n.c.IsSolved() {
			return solution(key, discovered, expanded)
		}

		expanded++
		for _, nb := range Neighbors(n.c) {
			nk := nb.Cube.Key()
			g := n.g + 1
			if old, ok := best[nk]; ok && old <= g {
				continue
			}
			best[nk] = g
			discovered[nk] = Record{Parent: key, Move: nb.Move, Depth: g}
			heap.Push(open, &node{c: nb.Cube, g: g, f: float64(g) + h.Evaluate(nb.Cube), seq: seq})
			seq++
		}
	}
	return Result{Expanded: expanded}
}

// Bidirectional grows one frontier from start and one from the goal, a
// full layer at a time and the smaller one first. Once the maps
// intersect, the meeting point with the smallest combined depth gives a
// shortest solution.
func Bidirectional(start cube.Cube) Result {
	if start.IsSolved() {
		return Result{Solved: true}
	}

	goal := cube.Goal()
	forward, backward := NewDiscovered(start), NewDiscovered(goal)
	forwardLayer, backwardLayer := []cube.Cube{start}, []cube.Cube{goal}
	expanded := 0

	for len(forwardLayer) > 0 && len(backwardLayer) > 0 {
		if len(forwardLayer) <= len(backwardLayer) {
			expanded += len(forwardLayer)
			forwardLayer = forward.ExpandLayer(forwardLayer)
		} else {
			expanded += len(backwardLayer)
			backwardLayer = backward.ExpandLayer(backwardLayer)
		}

		meet, ok := BestMeet(forward, backward)
		if !ok {
			continue
		}
		head, err := Path(meet, forward)
		if err != nil {
			break
		}
		tail, err := Path(meet, backward)
		if err != nil {
			break
		}
		// tail leads from the goal to the meeting point; walk it backwards.
		path := append(head, types.InvertMoves(tail)...)
		return Result{Path: path, Expanded: expanded, Solved: true}
	}
	return Result{Expanded: expanded}
}

// AStarFunc adapts AStar to the (path, expansions) shape the verifier uses.
func AStarFunc(c cube.Cube, h heuristic.Evaluator) ([]types.Move, int) {
	r := AStar(c, h)
	return r.Path, r.Expanded
}

// BFSFunc adapts BFS to the (path, expansions) shape the verifier uses.
func BFSFunc(c cube.Cube) ([]types.Move, int) {
	r := BFS(c)
	return r.Path, r.Expanded
}

// BidirectionalFunc adapts Bidirectional like BFSFunc.
func BidirectionalFunc(c cube.Cube) ([]types.Move, int) {
	r := Bidirectional(c)
	return r.Path, r.Expanded
}
