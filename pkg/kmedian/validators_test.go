package kmedian

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// recomputeAssignmentCost independently recomputes the total weighted
// squared-distance assignment cost by widening every coordinate to
// float64 and using gonum/floats, deliberately not reusing the
// package's own float32 dist/weightedCost kernel — this is exactly the
// kind of off-hot-path, float64-domain validation gonum is meant for
// here (see distance.go's grounding note on why the solver's hot path
// stays on float32/stdlib).
func recomputeAssignmentCost(ps *PointSet) float64 {
	diffs := make([]float64, ps.Dim)
	var total float64
	for i := 0; i < ps.N; i++ {
		p := ps.Points[i]
		c := ps.Points[p.Assign]
		for d := 0; d < ps.Dim; d++ {
			diffs[d] = float64(p.Coord[d]) - float64(c.Coord[d])
			diffs[d] *= diffs[d]
		}
		total += float64(p.Weight) * floats.Sum(diffs)
	}
	return total
}

func TestRecomputedAssignmentCostMatchesSolverState(t *testing.T) {
	ps := clusteredSet(t, 4, 15)
	_, _, err := KMedian(context.Background(), ps, 3, 6, NewRNG(4), 4)
	require.NoError(t, err)

	var solverCost float64
	for i := 0; i < ps.N; i++ {
		solverCost += float64(ps.Points[i].Cost)
	}

	independent := recomputeAssignmentCost(ps)
	assert.InEpsilon(t, independent+1, solverCost+1, 1e-4)
}
