package types

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"R", R},
		{"R'", RPrime},
		{"u", U},
		{"U`", UPrime},
		{" F ", F},
		{"F'", FPrime},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if err != nil {
			t.Errorf("ParseMove(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMove(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, in := range []string{"", "L", "D", "B", "R2", "X'", "R''"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q): want ErrInvalidNotation, got %v", in, err)
		}
	}
}

func TestParseMovesRoundTrip(t *testing.T) {
	const scramble = "R U' R' F' U"
	moves, err := ParseMoves(scramble)
	if err != nil {
		t.Fatalf("ParseMoves: %v", err)
	}
	if len(moves) != 5 {
		t.Fatalf("got %d moves, want 5", len(moves))
	}
	if got := FormatMoves(moves); got != scramble {
		t.Errorf("FormatMoves = %q, want %q", got, scramble)
	}
}

func TestParseMovesRejectsBadToken(t *testing.T) {
	if _, err := ParseMoves("R U2 F"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("want ErrInvalidNotation, got %v", err)
	}
}

func TestInverse(t *testing.T) {
	for _, m := range AllMoves {
		if m.Inverse().Inverse() != m {
			t.Errorf("%v inverse twice should be itself", m)
		}
		if m.Inverse() == m {
			t.Errorf("%v should not be its own inverse", m)
		}
	}
}

func TestInvertMoves(t *testing.T) {
	moves, _ := ParseMoves("R U' F")
	got := FormatMoves(InvertMoves(moves))
	if got != "F' U R'" {
		t.Errorf("InvertMoves = %q, want %q", got, "F' U R'")
	}
}

func TestAllMovesValid(t *testing.T) {
	if len(AllMoves) != 6 {
		t.Fatalf("expected 6 moves, got %d", len(AllMoves))
	}
	for _, m := range AllMoves {
		if !m.IsValid() {
			t.Errorf("%v should be valid", m)
		}
	}
	if (Move{Face: "L", Turn: TurnCW}).IsValid() {
		t.Error("L should not be valid")
	}
}
