package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/harness"
	"github.com/SeamusWaldron/pocketcube/internal/heuristic"
	"github.com/SeamusWaldron/pocketcube/internal/pdb"
	"github.com/SeamusWaldron/pocketcube/internal/search"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

func TestAdmissibleHeuristicsPass(t *testing.T) {
	battery := harness.DefaultBattery()[:2]
	for _, name := range []string{"zero", "manhattan", "manhattan-global-max"} {
		s, err := heuristic.Lookup(name)
		require.NoError(t, err)

		res := Check(search.AStarFunc, search.BFSFunc, s, WithTrials(2), WithBattery(battery))
		assert.True(t, res.Admissible, name)
		assert.Nil(t, res.Counterexample, name)
		assert.Equal(t, 2, res.Trials)
		assert.Equal(t, 2, res.Cases)
	}
}

// bait overestimates exactly on the neighbours of start that lie on a
// shortest path, which forces A* onto a detour.
func bait(t *testing.T, start cube.Cube) heuristic.Evaluator {
	t.Helper()
	db, err := pdb.BuildBFS(7)
	require.NoError(t, err)
	d, ok := db.Distance(start)
	require.True(t, ok)
	require.GreaterOrEqual(t, d, 2)

	onPath := map[cube.Key]bool{}
	for _, n := range search.Neighbors(start) {
		if nd, ok := db.Distance(n.Cube); ok && nd == d-1 {
			onPath[n.Cube.Key()] = true
		}
	}
	require.NotEmpty(t, onPath)
	require.Less(t, len(onPath), len(types.AllMoves))

	return heuristic.Func(func(c cube.Cube) float64 {
		if onPath[c.Key()] {
			return 1000
		}
		return 0
	})
}

func TestInadmissibleHeuristicDetected(t *testing.T) {
	battery := harness.DefaultBattery()[:1]
	h := bait(t, battery[0].Cube())

	res := Check(search.AStarFunc, search.BFSFunc, h, WithTrials(3), WithBattery(battery))
	require.False(t, res.Admissible)
	require.NotNil(t, res.Counterexample)
	assert.Equal(t, LongerThanOracle, res.Counterexample.Verdict)
	assert.Equal(t, 0, res.Counterexample.Trial)
	assert.Equal(t, 1, res.Trials)
	assert.Greater(t, len(res.Counterexample.Path), len(res.Counterexample.OraclePath))
	assert.True(t, battery[0].Cube().ApplyMoves(res.Counterexample.Path).IsSolved())

	assert.False(t, Verify(search.AStarFunc, search.BFSFunc, h, WithTrials(1), WithBattery(battery)))
}

func TestBrokenOracleDetected(t *testing.T) {
	padded := func(c cube.Cube) ([]types.Move, int) {
		path, n := search.BFSFunc(c)
		return append(path, types.R, types.RPrime), n
	}
	res := Check(search.AStarFunc, padded, heuristic.Zero,
		WithTrials(1), WithBattery(harness.DefaultBattery()[:1]))
	require.False(t, res.Admissible)
	assert.Equal(t, ShorterThanOracle, res.Counterexample.Verdict)
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	calls := 0
	counting := func(c cube.Cube, _ heuristic.Evaluator) ([]types.Move, int) {
		calls++
		return nil, 0
	}
	oracle := func(cube.Cube) ([]types.Move, int) { return nil, 0 }

	res := Check(counting, oracle, heuristic.Zero, WithTrials(0), WithLogger(nil),
		WithBattery(harness.DefaultBattery()[:1]))
	assert.True(t, res.Admissible)
	assert.Equal(t, DefaultTrials, res.Trials)
	assert.Equal(t, DefaultTrials, calls)
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "agree", Agree.String())
	assert.Equal(t, "longer than oracle", LongerThanOracle.String())
	assert.Equal(t, "shorter than oracle", ShorterThanOracle.String())
	assert.Equal(t, "unknown", Verdict(9).String())
}
