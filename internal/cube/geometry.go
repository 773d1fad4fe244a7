package cube

import "github.com/SeamusWaldron/pocketcube/pkg/types"

// Move tables are derived from cube geometry instead of being written out
// by hand. Cubie centers sit at {-1,+1}^3 (x right, y up, z front); a
// sticker is a cubie position plus the outward normal of its face.

type vec [3]int

func (a vec) dot(b vec) int {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a vec) cross(b vec) vec {
	return vec{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (a vec) scale(k int) vec {
	return vec{a[0] * k, a[1] * k, a[2] * k}
}

func (a vec) sub(b vec) vec {
	return vec{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// rotateCW turns v a quarter turn clockwise as seen looking at the face
// whose outward normal is n: v' = n(n.v) - n x v.
func rotateCW(v, n vec) vec {
	return n.scale(n.dot(v)).sub(n.cross(v))
}

var faceNormals = [Faces]vec{
	F: {0, 0, 1},
	R: {1, 0, 0},
	B: {0, 0, -1},
	L: {-1, 0, 0},
	U: {0, 1, 0},
	D: {0, -1, 0},
}

type sticker struct {
	pos    vec
	normal vec
}

func bit(cond bool) int {
	if cond {
		return 1
	}
	return 0
}

// index maps a sticker to its facelet index using the per-face viewing
// orientation documented on Cube.
func (s sticker) index() int {
	x, y, z := s.pos[0], s.pos[1], s.pos[2]
	var face Face
	var row, col int
	switch s.normal {
	case faceNormals[F]:
		face, row, col = F, bit(y < 0), bit(x > 0)
	case faceNormals[R]:
		face, row, col = R, bit(y < 0), bit(z < 0)
	case faceNormals[B]:
		face, row, col = B, bit(y < 0), bit(x < 0)
	case faceNormals[L]:
		face, row, col = L, bit(y < 0), bit(z > 0)
	case faceNormals[U]:
		face, row, col = U, bit(z > 0), bit(x > 0)
	case faceNormals[D]:
		face, row, col = D, bit(z < 0), bit(x > 0)
	}
	return int(face)*FaceletsPerFace + row*2 + col
}

// stickers lists every sticker in facelet index order.
var stickers = func() [Facelets]sticker {
	var out [Facelets]sticker
	for _, x := range []int{-1, 1} {
		for _, y := range []int{-1, 1} {
			for _, z := range []int{-1, 1} {
				pos := vec{x, y, z}
				for axis := 0; axis < 3; axis++ {
					var n vec
					n[axis] = pos[axis]
					s := sticker{pos: pos, normal: n}
					out[s.index()] = s
				}
			}
		}
	}
	return out
}()

var moveFaces = map[types.Face]Face{
	types.FaceR: R,
	types.FaceU: U,
	types.FaceF: F,
}

// permutations[m][i] is the facelet index whose color lands on index i
// after applying m.
var permutations = func() map[types.Move][Facelets]int {
	out := make(map[types.Move][Facelets]int, len(types.AllMoves))
	for _, m := range types.AllMoves {
		n := faceNormals[moveFaces[m.Face]]
		quarterTurns := 1
		if m.Turn == types.TurnCCW {
			quarterTurns = 3
		}

		var src [Facelets]int
		for i := range src {
			src[i] = i
		}
		for i, s := range stickers {
			if s.pos.dot(n) <= 0 {
				continue
			}
			t := s
			for q := 0; q < quarterTurns; q++ {
				t = sticker{pos: rotateCW(t.pos, n), normal: rotateCW(t.normal, n)}
			}
			src[t.index()] = i
		}
		out[m] = src
	}
	return out
}()
