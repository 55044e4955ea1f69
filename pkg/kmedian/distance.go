package kmedian

// dist computes the squared Euclidean distance between two points'
// coordinates. Accumulated in float32 to match the coordinate
// precision throughout, not widened to float64 — only the cost
// accumulators further up the call chain (pgain's work memory,
// pkmedian's z/hiz) are double precision.
func dist(a, b Point) float32 {
	var sum float32
	for i := range a.Coord {
		d := a.Coord[i] - b.Coord[i]
		sum += d * d
	}
	return sum
}

// weightedCost is dist(a,b) scaled by a's weight, the quantity stored
// in Point.Cost whenever a's assignment changes.
func weightedCost(a, assignedTo Point) float32 {
	return dist(a, assignedTo) * a.Weight
}
