// Package types contains shared type definitions for the pocketcube module.
package types

import (
	"errors"
	"strings"
)

// ErrInvalidNotation is returned when a move token cannot be parsed.
var ErrInvalidNotation = errors.New("pocketcube: invalid move notation")

// Face represents a turnable face in standard notation.
// The pocket cube keeps the down-back-left corner fixed, so only the
// right, up and front layers turn.
type Face string

const (
	FaceR Face = "R" // Right
	FaceU Face = "U" // Up
	FaceF Face = "F" // Front
)

// Turn represents the direction of a quarter turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
)

// Move represents a single quarter turn of one face.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Predefined moves in enumeration order.
var (
	R      = Move{Face: FaceR, Turn: TurnCW}
	RPrime = Move{Face: FaceR, Turn: TurnCCW}
	U      = Move{Face: FaceU, Turn: TurnCW}
	UPrime = Move{Face: FaceU, Turn: TurnCCW}
	F      = Move{Face: FaceF, Turn: TurnCW}
	FPrime = Move{Face: FaceF, Turn: TurnCCW}
)

// AllMoves is the fixed move enumeration. Search code iterates it in this
// order, so tie-breaking between equal-cost moves is deterministic.
var AllMoves = [...]Move{R, RPrime, U, UPrime, F, FPrime}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', U, F'
func (m Move) Notation() string {
	if m.Turn == TurnCCW {
		return string(m.Face) + "'"
	}
	return string(m.Face)
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R.
func (m Move) Inverse() Move {
	inv := m
	inv.Turn = -m.Turn
	return inv
}

// IsValid reports whether the move belongs to AllMoves.
func (m Move) IsValid() bool {
	switch m.Face {
	case FaceR, FaceU, FaceF:
	default:
		return false
	}
	return m.Turn == TurnCW || m.Turn == TurnCCW
}

// ParseMove parses a notation token such as R, R', u or F`.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	switch s[0] {
	case 'R', 'r':
		face = FaceR
	case 'U', 'u':
		face = FaceU
	case 'F', 'f':
		face = FaceF
	default:
		return Move{}, ErrInvalidNotation
	}

	turn := TurnCW
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = TurnCCW
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Turn: turn}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U' R' F' U"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
