package kmedian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUniformSet(n, dim int) *PointSet {
	ps := NewPointSet(n, dim)
	ps.SetN(n)
	for i := 0; i < n; i++ {
		ps.Points[i].Weight = 1
		for d := 0; d < dim; d++ {
			ps.Points[i].Coord[d] = float32(i + d)
		}
	}
	return ps
}

func TestSelectFeasibleFastReturnsIndicesInRange(t *testing.T) {
	ps := newUniformSet(50, 2)
	feasible := SelectFeasibleFast(ps, 5, NewRNG(1))
	require.NotEmpty(t, feasible)
	for _, idx := range feasible {
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, ps.N)
	}
}

func TestSelectFeasibleFastKMinOneStillProducesACandidate(t *testing.T) {
	ps := newUniformSet(10, 2)
	feasible := SelectFeasibleFast(ps, 1, NewRNG(1))
	assert.NotEmpty(t, feasible)
}

func TestSelectFeasibleFastAllPointsWhenSampleCoversSet(t *testing.T) {
	ps := newUniformSet(3, 1)
	feasible := SelectFeasibleFast(ps, 50, NewRNG(1))
	assert.Len(t, feasible, 3)
}

func TestSelectFeasibleFastIsDeterministicUnderFixedSeed(t *testing.T) {
	ps1 := newUniformSet(30, 3)
	ps2 := newUniformSet(30, 3)
	a := SelectFeasibleFast(ps1, 4, NewRNG(9))
	b := SelectFeasibleFast(ps2, 4, NewRNG(9))
	assert.Equal(t, a, b)
}
