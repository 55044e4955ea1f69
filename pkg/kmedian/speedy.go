package kmedian

import (
	"context"

	"github.com/albertogg99/PARSEC/internal/parallel"
)

// Speedy runs the serial probabilistic facility-opening pass: point 0
// always opens as the first center; every later point i opens with
// probability cost[i]/z, where cost[i] is its current assignment cost
// under whichever centers have opened so far. Each time a point opens,
// every point in the set is re-scanned in parallel and reassigned to
// the new center if that lowers its cost, mirroring the original's
// parallel_reduce-per-open-decision structure.
//
// Returns the number of centers opened and the assignment cost of the
// resulting configuration (z*k plus the summed per-point costs).
func Speedy(ctx context.Context, ps *PointSet, z float64, g *RNG, workers int) (k int, cost float64, err error) {
	n := ps.N
	if n == 0 {
		return 0, 0, nil
	}

	for i := 0; i < n; i++ {
		ps.Points[i].Assign = 0
		ps.Points[i].Cost = weightedCost(ps.Points[i], ps.Points[0])
	}
	k = 1

	for i := 1; i < n; i++ {
		draw := g.Float64()
		if draw >= float64(ps.Points[i].Cost)/z {
			continue
		}
		k++
		x := i
		err = parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
			for j := r.Lo; j < r.Hi; j++ {
				c := weightedCost(ps.Points[j], ps.Points[x])
				if c < ps.Points[j].Cost {
					ps.Points[j].Assign = x
					ps.Points[j].Cost = c
				}
			}
			return nil
		})
		if err != nil {
			return 0, 0, err
		}
	}

	w := parallel.NumWorkers(n, workers)
	partials := make([]float64, w)
	err = parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
		var local float64
		for j := r.Lo; j < r.Hi; j++ {
			local += float64(ps.Points[j].Cost)
		}
		partials[r.Worker] = local
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	var sum float64
	for _, p := range partials {
		sum += p
	}
	return k, z*float64(k) + sum, nil
}
