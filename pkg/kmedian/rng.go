package kmedian

import "math/rand"

// RNG wraps a *rand.Rand instance explicitly passed around by callers,
// rather than relying on the math/rand global source: a run's
// reproducibility under a fixed seed must not depend on whether
// anything else in the process also calls math/rand.
type RNG struct {
	r *rand.Rand
}

// NewRNG returns an RNG seeded deterministically from seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewSource(seed))}
}

// Float64 draws a uniform float in [0,1).
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Intn draws a uniform int in [0,n).
func (g *RNG) Intn(n int) int {
	return g.r.Intn(n)
}

// Shuffle permutes pts in place using Fisher-Yates, n-1 draws for n
// points. Swapping whole Point structs also swaps their Coord slice
// headers, which is exactly the original's "swap the iterator, not the
// floats" semantics.
func Shuffle(pts []Point, g *RNG) {
	n := len(pts)
	for i := 0; i < n-1; i++ {
		j := i + g.Intn(n-i)
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// IntShuffle permutes a slice of ints in place, same algorithm as
// Shuffle, used to reorder the feasible-center index set between FL
// passes.
func IntShuffle(xs []int, g *RNG) {
	n := len(xs)
	for i := 0; i < n-1; i++ {
		j := i + g.Intn(n-i)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
