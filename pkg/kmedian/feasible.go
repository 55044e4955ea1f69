package kmedian

import (
	"math"
	"sort"

	"github.com/albertogg99/PARSEC/cfg"
)

// SelectFeasibleFast draws a weight-proportional sample of candidate
// center indices out of ps.Live(), sized min(N, ITER*kmin*ln(kmin)).
// Sampling is sequential and draw-order-sensitive: given the same RNG
// state it always returns the same sequence, so it is never run
// concurrently with itself or reordered across workers.
func SelectFeasibleFast(ps *PointSet, kmin int, g *RNG) []int {
	n := ps.N
	if n == 0 {
		return nil
	}

	m := int(cfg.Iter * float64(kmin) * math.Log(float64(kmin)))
	if m > n {
		m = n
	}
	if m < 1 {
		// kmin==1 makes ln(kmin)==0 and would otherwise yield an
		// empty feasible set, which FL cannot iterate over at all.
		m = 1
	}
	if m == n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	accum := make([]float64, n)
	var running float64
	for i := 0; i < n; i++ {
		running += float64(ps.Points[i].Weight)
		accum[i] = running
	}
	total := accum[n-1]

	feasible := make([]int, m)
	for i := 0; i < m; i++ {
		draw := total * g.Float64()
		idx := sort.Search(n, func(j int) bool { return accum[j] > draw })
		if idx >= n {
			idx = n - 1
		}
		feasible[i] = idx
	}
	return feasible
}
