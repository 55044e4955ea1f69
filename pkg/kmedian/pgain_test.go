package kmedian

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoClusters builds two tight groups of points far apart, all
// currently assigned to point 0 (as if speedy opened only one center).
func twoClusters(t *testing.T) *PointSet {
	t.Helper()
	ps := NewPointSet(8, 1)
	ps.SetN(8)
	coords := []float32{0, 0.1, -0.1, 0.2, -0.2, 100, 100.1, 99.9}
	for i, c := range coords {
		ps.Points[i].Weight = 1
		ps.Points[i].Coord[0] = c
	}
	for i := 0; i < ps.N; i++ {
		ps.Points[i].Assign = 0
		ps.Points[i].Cost = weightedCost(ps.Points[i], ps.Points[0])
	}
	ps.IsCenter[0] = true
	return ps
}

func TestPGainOpensBeneficialCenterAndReturnsPositiveGain(t *testing.T) {
	ps := twoClusters(t)
	k := 1
	gain, err := PGain(context.Background(), ps, 5, 1.0, &k, 4)
	require.NoError(t, err)
	assert.Greater(t, gain, 0.0)
	assert.Equal(t, 2, k)
	assert.True(t, ps.IsCenter[5])

	for i := 5; i < 8; i++ {
		assert.Equal(t, 5, ps.Points[i].Assign)
	}
}

func TestPGainRejectsUnhelpfulCenterAndLeavesStateUnchanged(t *testing.T) {
	ps := twoClusters(t)
	before := append([]Point(nil), ps.Points...)
	k := 1
	gain, err := PGain(context.Background(), ps, 1, 1e9, &k, 4)
	require.NoError(t, err)
	assert.Equal(t, 0.0, gain)
	assert.Equal(t, 1, k)
	for i := range before {
		assert.Equal(t, before[i].Assign, ps.Points[i].Assign)
		assert.Equal(t, before[i].Cost, ps.Points[i].Cost)
	}
}

func TestPGainClosesRedundantCenterWhenBetterOneOpens(t *testing.T) {
	ps := NewPointSet(6, 1)
	ps.SetN(6)
	coords := []float32{0, 0.5, 1, 1.5, 2, 100}
	for i, c := range coords {
		ps.Points[i].Weight = 1
		ps.Points[i].Coord[0] = c
	}
	// Two centers already open: 0 and 5, everything nearer 0.
	for i := 0; i < ps.N; i++ {
		ps.Points[i].Assign = 0
		ps.Points[i].Cost = weightedCost(ps.Points[i], ps.Points[0])
	}
	ps.Points[5].Assign = 5
	ps.Points[5].Cost = 0
	ps.IsCenter[0] = true
	ps.IsCenter[5] = true

	k := 2
	// Opening point 2 (the median of the tight cluster) should absorb
	// point 0's role entirely, closing it, without touching center 5.
	gain, err := PGain(context.Background(), ps, 2, 2.0, &k, 4)
	require.NoError(t, err)
	if gain > 0 {
		assert.True(t, ps.IsCenter[5])
		assert.False(t, ps.IsCenter[0])
	}
}
