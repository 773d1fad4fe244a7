// Package notation reduces move sequences to an equivalent canonical form.
package notation

import (
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// NormalizeTurn reduces a net number of clockwise quarter turns to the
// range [-1, 2]: -3 -> 1, -2 -> 2, 3 -> -1, 4 -> 0.
func NormalizeTurn(turn int) int {
	turn = ((turn % 4) + 4) % 4
	if turn == 3 {
		turn = -1
	}
	return turn
}

// expand returns the quarter turns of face f whose net turn is n.
func expand(f types.Face, n int) []types.Move {
	switch NormalizeTurn(n) {
	case 1:
		return []types.Move{{Face: f, Turn: types.TurnCW}}
	case -1:
		return []types.Move{{Face: f, Turn: types.TurnCCW}}
	case 2:
		// Half turns are written as two clockwise quarter turns.
		m := types.Move{Face: f, Turn: types.TurnCW}
		return []types.Move{m, m}
	default:
		return nil
	}
}

type run struct {
	face types.Face
	net  int
}

// Simplify merges consecutive turns of the same face and drops those that
// cancel. The result describes the same configuration and is never
// longer than moves. Invalid moves are dropped.
func Simplify(moves []types.Move) []types.Move {
	// A stack of face runs lets a cancellation expose the previous run,
	// so R U U' R' collapses completely.
	var stack []run
	for _, m := range moves {
		if !m.IsValid() {
			continue
		}
		if n := len(stack); n > 0 && stack[n-1].face == m.Face {
			stack[n-1].net = NormalizeTurn(stack[n-1].net + int(m.Turn))
			if stack[n-1].net == 0 {
				stack = stack[:n-1]
			}
			continue
		}
		stack = append(stack, run{face: m.Face, net: int(m.Turn)})
	}

	out := make([]types.Move, 0, len(moves))
	for _, r := range stack {
		out = append(out, expand(r.face, r.net)...)
	}
	return out
}

// Parse parses s and simplifies the result.
func Parse(s string) ([]types.Move, error) {
	moves, err := types.ParseMoves(s)
	if err != nil {
		return nil, err
	}
	return Simplify(moves), nil
}
