package kmedian

// ContCenters folds every non-center point's coordinates into its
// assigned center as a running weighted mean, so that a center ends up
// positioned at the weighted centroid of its cluster rather than at
// whichever original data point happened to open it. Point order
// matters (each fold depends on the center's weight so far), so this
// always walks Points in index order, matching the source and keeping
// the result reproducible for a given PointSet.
func ContCenters(ps *PointSet) {
	for i := 0; i < ps.N; i++ {
		p := ps.Points[i]
		if p.Assign == i {
			continue
		}
		center := &ps.Points[p.Assign]
		wc, wp := center.Weight, p.Weight
		total := wc + wp
		for d := 0; d < ps.Dim; d++ {
			center.Coord[d] = (center.Coord[d]*wc + p.Coord[d]*wp) / total
		}
		center.Weight = total
	}
}
