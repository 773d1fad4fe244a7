package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/pkg/types"
)

func TestNeighbors(t *testing.T) {
	c, err := cube.Parse("R U'")
	require.NoError(t, err)

	ns := Neighbors(c)
	require.Len(t, ns, len(types.AllMoves))
	for i, n := range ns {
		assert.Equal(t, types.AllMoves[i], n.Move)
		assert.Equal(t, c.Apply(n.Move), n.Cube)
	}
	// No filtering: undoing the last move is still offered.
	var solvedByU bool
	for _, n := range ns {
		if n.Move == types.U && n.Cube == cube.New(types.R) {
			solvedByU = true
		}
	}
	assert.True(t, solvedByU)
}

func TestPathFollowsScramble(t *testing.T) {
	moves, err := types.ParseMoves("R U' R' F' U")
	require.NoError(t, err)

	d := NewDiscovered(cube.Goal())
	c := cube.Goal()
	for _, m := range moves {
		next := c.Apply(m)
		require.True(t, d.Add(c.Key(), next.Key(), m))
		c = next
	}

	path, err := Path(c.Key(), d)
	require.NoError(t, err)
	require.Len(t, path, 5)
	assert.Equal(t, moves, path)
	assert.Equal(t, c.Facelets(), cube.Goal().ApplyMoves(path).Facelets())
	assert.Equal(t, 5, d[c.Key()].Depth)
}

func TestPathAfterLayerExpansion(t *testing.T) {
	target, err := cube.Parse("R U' R' F' U")
	require.NoError(t, err)

	d := NewDiscovered(cube.Goal())
	layer := []cube.Cube{cube.Goal()}
	for i := 0; i < 5; i++ {
		layer = d.ExpandLayer(layer)
	}

	rec, ok := d[target.Key()]
	require.True(t, ok, "scramble should be within 5 layers")
	path, err := Path(target.Key(), d)
	require.NoError(t, err)
	assert.Len(t, path, rec.Depth)
	assert.LessOrEqual(t, len(path), 5)
	assert.Equal(t, target, cube.Goal().ApplyMoves(path))
}

func TestPathRoot(t *testing.T) {
	d := NewDiscovered(cube.Goal())
	path, err := Path(cube.Goal().Key(), d)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestPathMissingKey(t *testing.T) {
	d := NewDiscovered(cube.Goal())
	_, err := Path(cube.New(types.R).Key(), d)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestPathBrokenChain(t *testing.T) {
	orphan := cube.New(types.R, types.U)
	d := Discovered{orphan.Key(): {Parent: cube.New(types.R).Key(), Move: types.U, Depth: 2}}
	_, err := Path(orphan.Key(), d)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestAddKeepsFirstRecord(t *testing.T) {
	d := NewDiscovered(cube.Goal())
	r := cube.New(types.R)
	require.True(t, d.Add(cube.Goal().Key(), r.Key(), types.R))
	assert.False(t, d.Add(cube.New(types.R, types.R).Key(), r.Key(), types.RPrime))
	assert.Equal(t, types.R, d[r.Key()].Move)
	assert.Equal(t, 1, d[r.Key()].Depth)
}

func TestMeetDegenerate(t *testing.T) {
	a := NewDiscovered(cube.Goal())
	b := NewDiscovered(cube.Goal())

	key, ok := Meet(a, b)
	require.True(t, ok)
	assert.Equal(t, cube.Goal().Key(), key)

	key, ok = BestMeet(a, b)
	require.True(t, ok)
	assert.Equal(t, cube.Goal().Key(), key)
}

func TestMeetDisjoint(t *testing.T) {
	a := NewDiscovered(cube.Goal())
	b := NewDiscovered(cube.New(types.R, types.U))

	_, ok := Meet(a, b)
	assert.False(t, ok)
	_, ok = BestMeet(a, b)
	assert.False(t, ok)
}

func TestBestMeetMinimisesCombinedDepth(t *testing.T) {
	start := cube.New(types.R, types.U)
	forward := NewDiscovered(start)
	backward := NewDiscovered(cube.Goal())
	fl, bl := []cube.Cube{start}, []cube.Cube{cube.Goal()}
	for i := 0; i < 2; i++ {
		fl = forward.ExpandLayer(fl)
		bl = backward.ExpandLayer(bl)
	}

	key, ok := BestMeet(forward, backward)
	require.True(t, ok)
	assert.Equal(t, 2, forward[key].Depth+backward[key].Depth)

	meet, ok := Meet(forward, backward)
	require.True(t, ok)
	assert.Contains(t, backward, meet)
	assert.Contains(t, forward, meet)
}

func TestSolutionFromBrokenChain(t *testing.T) {
	orphan := cube.New(types.R, types.U)
	d := Discovered{orphan.Key(): {Parent: cube.New(types.R).Key(), Move: types.U, Depth: 2}}
	r := solution(orphan.Key(), d, 5)
	assert.False(t, r.Solved)
	assert.Nil(t, r.Path)
	assert.Equal(t, 5, r.Expanded)

	d = NewDiscovered(cube.Goal())
	next := cube.New(types.FPrime)
	require.True(t, d.Add(cube.Goal().Key(), next.Key(), types.FPrime))
	r = solution(next.Key(), d, 1)
	assert.True(t, r.Solved)
	assert.Equal(t, []types.Move{types.FPrime}, r.Path)
}
