package analysis

import (
	"github.com/samber/lo"

	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

// MoveFrequency counts each move across paths. Every move of
// types.AllMoves is present, with zero when unused.
func MoveFrequency(paths [][]types.Move) map[types.Move]int {
	counts := lo.CountValues(lo.Flatten(paths))
	for _, m := range types.AllMoves {
		if _, ok := counts[m]; !ok {
			counts[m] = 0
		}
	}
	return counts
}

// MeanLength returns the average path length, or 0 for no paths.
func MeanLength(paths [][]types.Move) float64 {
	if len(paths) == 0 {
		return 0
	}
	total := lo.SumBy(paths, func(p []types.Move) int { return len(p) })
	return float64(total) / float64(len(paths))
}
