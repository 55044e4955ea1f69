package streaming

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/albertogg99/PARSEC/pkg/kmedian"
)

// CenterDiagnostic summarizes one open center's cluster: how many
// points are assigned to it and the mean/stddev of their assignment
// cost. Purely informational — nothing in the solver consumes this.
type CenterDiagnostic struct {
	Center      int
	MemberCount int
	MeanCost    float64
	StdDevCost  float64
}

// Diagnose computes a CenterDiagnostic for every open center in ps,
// ordered by center index. This is float64-domain, off-hot-path work
// (run once per chunk, not per pgain call), so unlike the dist kernel
// it's a reasonable place to lean on gonum rather than hand-roll the
// mean/variance accumulation.
func Diagnose(ps *kmedian.PointSet) []CenterDiagnostic {
	costsByCenter := make(map[int][]float64)
	for i := 0; i < ps.N; i++ {
		a := ps.Points[i].Assign
		costsByCenter[a] = append(costsByCenter[a], float64(ps.Points[i].Cost))
	}

	centers := ps.Centers()
	out := make([]CenterDiagnostic, 0, len(centers))
	for _, c := range centers {
		costs := costsByCenter[c]
		var mean, std float64
		switch {
		case len(costs) > 1:
			mean, std = stat.MeanStdDev(costs, nil)
		case len(costs) == 1:
			// A single member has no spread; MeanStdDev would yield NaN.
			mean = costs[0]
		}
		out = append(out, CenterDiagnostic{
			Center:      c,
			MemberCount: len(costs),
			MeanCost:    mean,
			StdDevCost:  std,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Center < out[j].Center })
	return out
}
