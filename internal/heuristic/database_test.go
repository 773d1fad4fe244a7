package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/pocketcube/internal/cube"
	"github.com/SeamusWaldron/pocketcube/internal/pdb"
)

type mapTable map[cube.Key]int

func (m mapTable) Lookup(k cube.Key) (int, bool) {
	d, ok := m[k]
	return d, ok
}

func TestWithDatabasePrefersTable(t *testing.T) {
	db, err := pdb.BuildBFS(3)
	require.NoError(t, err)

	fallback := Func(func(cube.Cube) float64 { return 100 })
	e := WithDatabase(db, fallback)

	db.Range(func(key cube.Key, d int) bool {
		assert.Equal(t, float64(d), e.Evaluate(cube.FromKey(key)))
		return true
	})
}

func TestWithDatabaseFallsBack(t *testing.T) {
	table := mapTable{}
	fallback := Func(func(cube.Cube) float64 { return 7 })
	e := WithDatabase(table, fallback)

	c := mustParse(t, "R U' R' F' U")
	assert.Equal(t, 7.0, e.Evaluate(c))
	assert.Empty(t, table, "lookups must not write to the table")
}

func TestWithDatabaseNilFallback(t *testing.T) {
	e := WithDatabase(mapTable{}, nil)
	assert.Equal(t, 0.0, e.Evaluate(mustParse(t, "F U")))
}

func TestDatabaseStrategy(t *testing.T) {
	db, err := pdb.BuildBFS(5)
	require.NoError(t, err)

	s, err := Database(db, "manhattan")
	require.NoError(t, err)
	assert.Equal(t, "db+manhattan", s.Name)
	assert.True(t, s.Admissible)

	s, err = Database(db, "hamming")
	require.NoError(t, err)
	assert.False(t, s.Admissible)

	_, err = Database(db, "missing")
	require.ErrorIs(t, err, ErrUnknownStrategy)
}

func TestDatabaseStrategyAdmissibleBeyondBound(t *testing.T) {
	exact, err := pdb.BuildBFS(6)
	require.NoError(t, err)
	small, err := pdb.BuildBFS(3)
	require.NoError(t, err)

	s, err := Database(small, "manhattan")
	require.NoError(t, err)
	exact.Range(func(key cube.Key, d int) bool {
		assert.LessOrEqual(t, s.Evaluate(cube.FromKey(key)), float64(d))
		return true
	})
}
