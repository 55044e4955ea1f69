/*
Package kmedian implements the streaming online k-median local-search
solver: speedy initialization, the pgain gain evaluator, the FL local
search loop, and the pkmedian binary search on facility cost that ties
them together. It operates on one in-memory PointSet at a time; nothing
here reads a stream or writes output — see pkg/pstream and
pkg/streaming for that.
*/
package kmedian

// Point is a single weighted data point plus the bookkeeping the
// solver attaches to it: which point (by index into the same PointSet)
// it is currently assigned to, and the cost of that assignment. Coord
// is a non-owning view into PointSet.Coords; copying or swapping a
// Point copies the view, not the underlying floats, which is what lets
// Shuffle permute Points cheaply.
type Point struct {
	Weight float32
	Coord  []float32
	Assign int
	Cost   float32
}

// PointSet is a fixed-capacity, variable-length collection of points
// sharing one flat coordinate buffer, plus the three auxiliary arrays
// the solver needs while it runs: which points are open centers, the
// dense center index of each open center, and a scratch flag used by
// pgain to record points about to switch to a newly opened center.
//
// Cap points worth of storage is allocated once; N tracks how many of
// them are live for the current chunk (N <= Cap always). Only
// Points[:N] and the parallel auxiliary slices are meaningful.
type PointSet struct {
	Dim int
	Cap int
	N   int

	Coords []float32
	Points []Point

	SwitchMembership []bool
	IsCenter         []bool
	CenterTable      []int
}

// NewPointSet allocates a PointSet with room for cap points of the
// given dimension. Every Point's Coord is wired to its fixed slot in
// Coords up front; SetN must be called before the solver runs to size
// the three auxiliary arrays to the chunk's actual point count.
func NewPointSet(cap, dim int) *PointSet {
	ps := &PointSet{
		Dim:    dim,
		Cap:    cap,
		Coords: make([]float32, cap*dim),
		Points: make([]Point, cap),
	}
	for i := range ps.Points {
		ps.Points[i].Coord = ps.Coords[i*dim : (i+1)*dim : (i+1)*dim]
	}
	return ps
}

// SetN marks n points (n <= Cap) as live and resets the auxiliary
// arrays to that size. Called once per chunk, after the chunk's
// coordinates have been written into Coords but before the solver
// touches the PointSet.
func (ps *PointSet) SetN(n int) {
	if n > ps.Cap {
		panic("kmedian: SetN exceeds PointSet capacity")
	}
	ps.N = n
	ps.SwitchMembership = make([]bool, n)
	ps.IsCenter = make([]bool, n)
	ps.CenterTable = make([]int, n)
}

// Live returns the slice of currently active points, Points[:N].
func (ps *PointSet) Live() []Point {
	return ps.Points[:ps.N]
}

// Centers returns the indices, in ascending order, of every point i
// with IsCenter[i] set.
func (ps *PointSet) Centers() []int {
	var out []int
	for i := 0; i < ps.N; i++ {
		if ps.IsCenter[i] {
			out = append(out, i)
		}
	}
	return out
}

// NumCenters reports len(Centers()) without allocating.
func (ps *PointSet) NumCenters() int {
	n := 0
	for i := 0; i < ps.N; i++ {
		if ps.IsCenter[i] {
			n++
		}
	}
	return n
}
