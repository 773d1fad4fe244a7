package heuristic

import "github.com/SeamusWaldron/pocketcube/internal/cube"

// blockedFacePenalty is the score of one face with any misplaced facelet.
const blockedFacePenalty = cube.FaceletsPerFace

// Hamming returns the number of facelets whose color differs from the goal.
// Not admissible: one quarter turn relocates eight facelets.
func Hamming(c cube.Cube) float64 {
	goal := cube.Goal()
	n := 0
	for i := 0; i < cube.Facelets; i++ {
		if c.At(i) != goal.At(i) {
			n++
		}
	}
	return float64(n)
}

// InverseHamming returns the number of correct facelets.
func InverseHamming(c cube.Cube) float64 {
	return cube.Facelets - Hamming(c)
}

// BlockedHamming returns 4 for every face that has at least one misplaced
// facelet.
func BlockedHamming(c cube.Cube) float64 {
	goal := cube.Goal()
	faces := 0
	for f := 0; f < cube.Faces; f++ {
		for j := 0; j < cube.FaceletsPerFace; j++ {
			i := f*cube.FaceletsPerFace + j
			if c.At(i) != goal.At(i) {
				faces++
				break
			}
		}
	}
	return float64(faces * blockedFacePenalty)
}
