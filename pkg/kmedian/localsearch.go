package kmedian

import "context"

// FL runs local search to convergence: reshuffle the feasible set,
// then walk it round-robin for iter steps, each step evaluating
// opening feasible[i % len(feasible)] via PGain. A full pass repeats
// as long as the fraction of cost recovered by the last pass still
// exceeds e; *k is updated in place by every PGain commit.
func FL(ctx context.Context, ps *PointSet, feasible []int, z float64, k *int, cost float64, iter int, e float64, g *RNG, workers int) (float64, error) {
	if cost <= 0 || len(feasible) == 0 {
		return cost, nil
	}

	change := cost
	for change/cost > e {
		change = 0
		IntShuffle(feasible, g)
		for i := 0; i < iter; i++ {
			x := feasible[i%len(feasible)]
			gain, err := PGain(ctx, ps, x, z, k, workers)
			if err != nil {
				return 0, err
			}
			change += gain
		}
		cost -= change
		if cost <= 0 {
			break
		}
	}
	return cost, nil
}
