package pairs

import (
	"sort"
	"testing"

	"github.com/kamusis/vecpair/internal/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_ThreeVectors(t *testing.T) {
	vs := []vector.Vector{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	ps, err := Compute(vs)
	require.NoError(t, err)
	require.Len(t, ps, 3)

	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for k, p := range ps {
		assert.Equal(t, want[k][0], p.I)
		assert.Equal(t, want[k][1], p.J)
		assert.Less(t, p.I, p.J)
	}
}

func TestCompute_PairCount(t *testing.T) {
	vs := make([]vector.Vector, 6)
	for i := range vs {
		vs[i] = vector.Vector{float64(i + 1), 1}
	}
	ps, err := Compute(vs)
	require.NoError(t, err)
	assert.Len(t, ps, 15)
}

func TestCompute_LengthMismatch(t *testing.T) {
	_, err := Compute([]vector.Vector{{1, 2}, {1}})
	assert.ErrorIs(t, err, vector.ErrVectorLengthMismatch)
}

func TestSort_Ascending(t *testing.T) {
	vs := []vector.Vector{{1, 0}, {0, 1}, {1, 1}, {-1, 0}}
	ps, err := Compute(vs)
	require.NoError(t, err)

	Sort(ps)
	assert.True(t, sort.SliceIsSorted(ps, func(i, j int) bool { return ps[i].Distance < ps[j].Distance }))
	assert.InDelta(t, 2.0, ps[len(ps)-1].Distance, 1e-12)
}

func TestSort_TiesKeepEnumerationOrder(t *testing.T) {
	ps := []PairDistance{
		{I: 0, J: 1, Distance: 0.5},
		{I: 0, J: 2, Distance: 0.1},
		{I: 1, J: 2, Distance: 0.5},
	}
	Sort(ps)
	assert.Equal(t, []PairDistance{
		{I: 0, J: 2, Distance: 0.1},
		{I: 0, J: 1, Distance: 0.5},
		{I: 1, J: 2, Distance: 0.5},
	}, ps)
}

func TestTop(t *testing.T) {
	ps := []PairDistance{{I: 0, J: 1}, {I: 0, J: 2}, {I: 1, J: 2}}
	assert.Len(t, Top(ps, 0), 3)
	assert.Len(t, Top(ps, 2), 2)
	assert.Len(t, Top(ps, 10), 3)
}
