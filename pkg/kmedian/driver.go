package kmedian

import (
	"context"
	"math"

	"github.com/albertogg99/PARSEC/cfg"
	"github.com/albertogg99/PARSEC/internal/parallel"
)

// KMedian clusters ps.Live() into somewhere between kmin and kmax
// centers, mutating ps's IsCenter/Assign/Cost in place, and returns
// the final center count and the objective local search tracked
// (facility cost z per open center plus assignment cost).
//
// It binary-searches the facility cost z between 0 and hiz (the cost
// of a single facility at the centroid-like point 0) until speedy plus
// local search lands the open-center count in [kmin,kmax], or the
// search interval collapses without finding one.
func KMedian(ctx context.Context, ps *PointSet, kmin, kmax int, g *RNG, workers int) (int, float64, error) {
	n := ps.N
	if n == 0 {
		return 0, 0, nil
	}
	if n <= kmax {
		for i := 0; i < n; i++ {
			ps.Points[i].Assign = i
			ps.Points[i].Cost = 0
			ps.IsCenter[i] = true
		}
		return n, 0, nil
	}

	hiz, err := hizReduce(ctx, ps, workers)
	if err != nil {
		return 0, 0, err
	}
	loz := 0.0
	z := (hiz + loz) / 2

	// speedy (retried at a lower z until it opens at least kmin
	// centers), the feasible set, and the initial center marking all run
	// before the z search below — the search loop only re-runs local
	// search and nudges z, exactly as pkmedian's outer while(1) only
	// ever calls pFL.
	var k int
	var cost float64
	for attempt := 0; attempt < cfg.SP; attempt++ {
		Shuffle(ps.Live(), g)
		k, cost, err = Speedy(ctx, ps, z, g, workers)
		if err != nil {
			return 0, 0, err
		}
		if k >= kmin {
			break
		}
	}
	for attempt := 0; k < kmin; attempt++ {
		if attempt%cfg.SP == 0 {
			hiz = z
			z = (hiz + loz) / 2
		}
		Shuffle(ps.Live(), g)
		k, cost, err = Speedy(ctx, ps, z, g, workers)
		if err != nil {
			return 0, 0, err
		}
	}

	feasible := SelectFeasibleFast(ps, kmin, g)
	for i := 0; i < n; i++ {
		ps.IsCenter[ps.Points[i].Assign] = true
	}

	iterCount := int(cfg.Iter * float64(kmax) * math.Log(float64(kmax)))

	for {
		cost, err = FL(ctx, ps, feasible, z, &k, cost, iterCount, 0.1, g, workers)
		if err != nil {
			return 0, 0, err
		}
		if float64(k) <= 1.1*float64(kmax) && float64(k) >= 0.9*float64(kmin) {
			cost, err = FL(ctx, ps, feasible, z, &k, cost, iterCount, 0.001, g, workers)
			if err != nil {
				return 0, 0, err
			}
		}

		if k > kmax {
			loz = z
			z = (hiz + loz) / 2
			cost += (z - loz) * float64(k)
		}
		if k < kmin {
			hiz = z
			z = (hiz + loz) / 2
			cost += (z - hiz) * float64(k)
		}

		if (k <= kmax && k >= kmin) || loz >= 0.999*hiz {
			return k, cost, nil
		}
	}
}

// hizReduce computes the cost of opening exactly one facility at
// point 0: the weighted sum of every point's distance to it.
func hizReduce(ctx context.Context, ps *PointSet, workers int) (float64, error) {
	n := ps.N
	w := parallel.NumWorkers(n, workers)
	partials := make([]float64, w)
	origin := ps.Points[0]
	err := parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
		var local float64
		for i := r.Lo; i < r.Hi; i++ {
			local += float64(weightedCost(ps.Points[i], origin))
		}
		partials[r.Worker] = local
		return nil
	})
	if err != nil {
		return 0, err
	}
	var sum float64
	for _, p := range partials {
		sum += p
	}
	return sum, nil
}
