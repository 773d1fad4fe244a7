package heuristic

import "github.com/SeamusWaldron/pocketcube/internal/cube"

// squareNeighbours[f] lists the faces one rotation away from face f.
// A facelet of color c sitting on face f is one quarter turn from home
// when c appears in squareNeighbours[f].
var squareNeighbours = [cube.Faces][]cube.Color{
	{1, 3, 4, 5},
	{0, 2, 4, 5},
	{1, 4, 3, 5},
	{0, 2, 4, 5},
	{0, 1, 2, 3},
	{0, 1, 2, 3},
}

// faceletsPerTurn is the number of facelets a quarter turn moves to
// another face.
const faceletsPerTurn = 8

// Bounds derived from squareNeighbours.
var (
	// MaxFaceletDistance is the largest face distance any facelet can have.
	MaxFaceletDistance = maxFaceletDistance()
	// MaxManhattan is the value of Manhattan when every facelet is at
	// MaxFaceletDistance.
	MaxManhattan = float64(cube.Facelets*MaxFaceletDistance) / faceletsPerTurn
	// MaxFaceMax is the value of ManhattanFaceMax when every face holds a
	// facelet at MaxFaceletDistance.
	MaxFaceMax = MaxFaceMaxSum / 2
	// MaxFaceMaxSum is the value of ManhattanFaceMaxSum when every face
	// holds a facelet at MaxFaceletDistance.
	MaxFaceMaxSum = float64(cube.Faces * MaxFaceletDistance)
)

func maxFaceletDistance() int {
	best := 0
	for f := 0; f < cube.Faces; f++ {
		for c := 0; c < cube.Faces; c++ {
			if d := faceDistance(cube.Face(f), cube.Color(c)); d > best {
				best = d
			}
		}
	}
	return best
}

// faceDistance returns 0 if color belongs on face, 1 if it belongs on a
// face one rotation away, else 2.
func faceDistance(face cube.Face, color cube.Color) int {
	if color == cube.Color(face) {
		return 0
	}
	for _, n := range squareNeighbours[face] {
		if n == color {
			return 1
		}
	}
	return 2
}

// FaceletDistance returns the face distance of facelet i in c.
func FaceletDistance(c cube.Cube, i int) int {
	return faceDistance(cube.FaceOf(i), c.At(i))
}

// Manhattan returns the summed face distance of all facelets divided by
// the number of facelets one quarter turn moves. Admissible.
func Manhattan(c cube.Cube) float64 {
	sum := 0
	for i := 0; i < cube.Facelets; i++ {
		sum += FaceletDistance(c, i)
	}
	return float64(sum) / faceletsPerTurn
}

// ManhattanFaceMaxSum sums the worst facelet distance of every face.
func ManhattanFaceMaxSum(c cube.Cube) float64 {
	sum := 0
	for f := 0; f < cube.Faces; f++ {
		worst := 0
		for j := 0; j < cube.FaceletsPerFace; j++ {
			if d := FaceletDistance(c, f*cube.FaceletsPerFace+j); d > worst {
				worst = d
			}
		}
		sum += worst
	}
	return float64(sum)
}

// ManhattanFaceMax is ManhattanFaceMaxSum halved. The result lies in
// [0, MaxFaceMax] and is 0 only when solved.
func ManhattanFaceMax(c cube.Cube) float64 {
	return ManhattanFaceMaxSum(c) / 2
}

// ManhattanGlobalMax returns the largest face distance of any facelet.
// Admissible.
func ManhattanGlobalMax(c cube.Cube) float64 {
	worst := 0
	for i := 0; i < cube.Facelets; i++ {
		if d := FaceletDistance(c, i); d > worst {
			worst = d
		}
	}
	return float64(worst)
}

// InverseManhattan is the closeness counterpart of Manhattan.
func InverseManhattan(c cube.Cube) float64 {
	return MaxManhattan - Manhattan(c)
}

// InverseFaceMax is the closeness counterpart of ManhattanFaceMax.
func InverseFaceMax(c cube.Cube) float64 {
	return MaxFaceMax - ManhattanFaceMax(c)
}

// InverseFaceMaxSum is the closeness counterpart of ManhattanFaceMaxSum.
func InverseFaceMaxSum(c cube.Cube) float64 {
	return MaxFaceMaxSum - ManhattanFaceMaxSum(c)
}

// InverseGlobalMax is the closeness counterpart of ManhattanGlobalMax.
func InverseGlobalMax(c cube.Cube) float64 {
	return float64(MaxFaceletDistance) - ManhattanGlobalMax(c)
}
