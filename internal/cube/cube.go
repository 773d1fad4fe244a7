// Package cube provides a 2x2x2 pocket cube model as an immutable value.
package cube

import (
	"fmt"
	"strings"

	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

const (
	// Faces is the number of faces on the cube.
	Faces = 6
	// FaceletsPerFace is the number of stickers on each face.
	FaceletsPerFace = 4
	// Facelets is the total number of stickers.
	Facelets = Faces * FaceletsPerFace
)

// Color represents a facelet color. In the goal state every facelet on
// face f has color Color(f).
type Color byte

const (
	Green  Color = 0 // Front face when solved
	Red    Color = 1 // Right face when solved
	Blue   Color = 2 // Back face when solved
	Orange Color = 3 // Left face when solved
	White  Color = 4 // Up face when solved
	Yellow Color = 5 // Down face when solved
)

func (c Color) String() string {
	switch c {
	case Green:
		return "G"
	case Red:
		return "R"
	case Blue:
		return "B"
	case Orange:
		return "O"
	case White:
		return "W"
	case Yellow:
		return "Y"
	default:
		return "?"
	}
}

// Face identifies a cube face. Opposite faces are (F,B), (R,L) and (U,D).
type Face int

const (
	F Face = 0 // Front (Green)
	R Face = 1 // Right (Red)
	B Face = 2 // Back (Blue)
	L Face = 3 // Left (Orange)
	U Face = 4 // Up (White)
	D Face = 5 // Down (Yellow)
)

func (f Face) String() string {
	switch f {
	case F:
		return "F"
	case R:
		return "R"
	case B:
		return "B"
	case L:
		return "L"
	case U:
		return "U"
	case D:
		return "D"
	default:
		return "?"
	}
}

// FaceOf returns the face that owns facelet index i.
func FaceOf(i int) Face {
	return Face(i / FaceletsPerFace)
}

// Key is the canonical map key of a configuration. Two configurations
// have equal keys iff their facelet sequences are equal.
type Key [Facelets]Color

// String returns the facelet colors as a compact digit string.
func (k Key) String() string {
	var b strings.Builder
	b.Grow(Facelets)
	for _, c := range k {
		b.WriteByte('0' + byte(c))
	}
	return b.String()
}

// Cube is a pocket cube configuration. Each face has 4 facelets indexed
// row-major as seen from outside that face:
//
//	0 1
//	2 3
//
// F, R, B and L are viewed with U on top, U with B on top and D with F
// on top. Facelet i belongs to face i/4.
type Cube struct {
	facelets Key
}

var goal = func() Cube {
	var c Cube
	for i := range c.facelets {
		c.facelets[i] = Color(FaceOf(i))
	}
	return c
}()

// Goal returns the solved configuration.
func Goal() Cube {
	return goal
}

// New creates a configuration by applying moves to the solved cube.
func New(moves ...types.Move) Cube {
	return goal.ApplyMoves(moves)
}

// Parse creates a configuration by applying a scramble in notation.
func Parse(scramble string) (Cube, error) {
	moves, err := types.ParseMoves(scramble)
	if err != nil {
		return Cube{}, fmt.Errorf("failed to parse scramble %q: %w", scramble, err)
	}
	return New(moves...), nil
}

// FromKey rebuilds the configuration a key was taken from.
func FromKey(k Key) Cube {
	return Cube{facelets: k}
}

// Key returns the canonical key of the configuration.
func (c Cube) Key() Key {
	return c.facelets
}

// Facelets returns a copy of the facelet sequence.
func (c Cube) Facelets() [Facelets]Color {
	return c.facelets
}

// At returns the color at facelet index i.
func (c Cube) At(i int) Color {
	return c.facelets[i]
}

// IsSolved returns true if the cube is in the solved state.
func (c Cube) IsSolved() bool {
	return c.facelets == goal.facelets
}

// Apply returns the configuration reached by applying m.
// Invalid moves leave the configuration unchanged.
func (c Cube) Apply(m types.Move) Cube {
	src, ok := permutations[m]
	if !ok {
		return c
	}
	var next Cube
	for i, from := range src {
		next.facelets[i] = c.facelets[from]
	}
	return next
}

// ApplyMoves applies a sequence of moves.
func (c Cube) ApplyMoves(moves []types.Move) Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// String returns a text representation of the cube as an unfolded net.
func (c Cube) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 2; row++ {
		b.WriteString("    ")
		c.writeRow(&b, U, row)
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 2; row++ {
		for _, face := range []Face{L, F, R, B} {
			c.writeRow(&b, face, row)
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 2; row++ {
		b.WriteString("    ")
		c.writeRow(&b, D, row)
		b.WriteString("\n")
	}

	return b.String()
}

func (c Cube) writeRow(b *strings.Builder, face Face, row int) {
	base := int(face)*FaceletsPerFace + row*2
	for col := 0; col < 2; col++ {
		b.WriteString(c.facelets[base+col].String())
		b.WriteString(" ")
	}
}
