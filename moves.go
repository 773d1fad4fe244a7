package pocketcube

import (
	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// Move is a quarter turn of the R, U or F face.
type Move = types.Move

// Cube is an immutable 2x2x2 configuration.
type Cube = cube.Cube

// Predefined moves.
//
// Example:
//
//	c := pocketcube.NewCube(pocketcube.R, pocketcube.U, pocketcube.RPrime)
var (
	R      = types.R      // Right clockwise
	RPrime = types.RPrime // Right counter-clockwise
	U      = types.U      // Up clockwise
	UPrime = types.UPrime // Up counter-clockwise
	F      = types.F      // Front clockwise
	FPrime = types.FPrime // Front counter-clockwise
)

// NewCube returns the solved cube with moves applied.
func NewCube(moves ...Move) Cube {
	return cube.New(moves...)
}

// ParseMoves parses a space-separated sequence such as "R U' R' F' U".
func ParseMoves(s string) ([]Move, error) {
	return types.ParseMoves(s)
}

// FormatMoves formats moves as space-separated notation.
func FormatMoves(moves []Move) string {
	return types.FormatMoves(moves)
}
