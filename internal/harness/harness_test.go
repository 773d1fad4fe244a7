package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

func TestDefaultBattery(t *testing.T) {
	cases := DefaultBattery()
	require.Len(t, cases, 4)
	for i, c := range cases {
		assert.Equal(t, i, c.Index)
		assert.Equal(t, DefaultScrambles[i], c.Scramble)
		assert.False(t, c.Cube().IsSolved())
	}
	assert.Len(t, cases[3].Moves, 11)
}

func TestParseBatteryError(t *testing.T) {
	_, err := ParseBattery([]string{"R U", "R D"})
	require.ErrorIs(t, err, types.ErrInvalidNotation)
}

func TestRunInverseSolverPasses(t *testing.T) {
	cases := DefaultBattery()
	inverse := func(c cube.Cube) ([]types.Move, int) {
		for _, tc := range cases {
			if tc.Cube() == c {
				return types.InvertMoves(tc.Moves), 0
			}
		}
		return nil, 0
	}

	report := Run(inverse, cases, nil)
	assert.True(t, report.Passed)
	assert.Equal(t, 4, report.PassedCount())
	for i, r := range report.Cases {
		assert.Equal(t, len(cases[i].Moves), r.PathLength)
	}
}

func TestRunDetectsFailure(t *testing.T) {
	noop := func(cube.Cube) ([]types.Move, int) { return nil, 1 }
	report := Run(noop, DefaultBattery()[:2], nil)
	assert.False(t, report.Passed)
	assert.Equal(t, 0, report.PassedCount())
	assert.Equal(t, 1, report.Cases[0].Expanded)
}
