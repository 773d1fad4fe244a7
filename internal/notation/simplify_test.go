package notation

import (
	"testing"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

func TestNormalizeTurn(t *testing.T) {
	tests := map[int]int{-3: 1, -2: 2, -1: -1, 0: 0, 1: 1, 2: 2, 3: -1, 4: 0, 5: 1}
	for in, want := range tests {
		if got := NormalizeTurn(in); got != want {
			t.Errorf("NormalizeTurn(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"R", "R"},
		{"R R R", "R'"},
		{"R R R R", ""},
		{"R' R'", "R R"},
		{"R U U' R'", ""},
		{"R U U U U F", "R F"},
		{"F U U F' U' R R F' R", "F U U F' U' R R F' R"},
		{"U' R U' F' R F F U' F U U", "U' R U' F' R F F U' F U U"},
		{"R R' U F F F", "U F'"},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.in, err)
		}
		if s := types.FormatMoves(got); s != tt.want {
			t.Errorf("Simplify(%q) = %q, want %q", tt.in, s, tt.want)
		}
	}
}

func TestSimplifyPreservesConfiguration(t *testing.T) {
	for _, s := range []string{"R R R U' U' U' F F", "R U R' U' R U R' U'", "F F F F R U U U"} {
		moves, err := types.ParseMoves(s)
		if err != nil {
			t.Fatalf("ParseMoves(%q) error: %v", s, err)
		}
		simple := Simplify(moves)
		if len(simple) > len(moves) {
			t.Errorf("Simplify(%q) grew to %d moves", s, len(simple))
		}
		if cube.New(moves...) != cube.New(simple...) {
			t.Errorf("Simplify(%q) = %q changes the configuration", s, types.FormatMoves(simple))
		}
	}
}

func TestSimplifyDropsInvalid(t *testing.T) {
	got := Simplify([]types.Move{types.R, {Face: "D", Turn: types.TurnCW}, types.RPrime})
	if len(got) != 0 {
		t.Errorf("Simplify with invalid move = %v, want empty", got)
	}
}

func TestParseError(t *testing.T) {
	if _, err := Parse("R X"); err == nil {
		t.Error("Parse(\"R X\") expected error")
	}
}
