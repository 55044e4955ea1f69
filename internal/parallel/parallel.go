/*
This pkg provides the fixed-worker parallel-for-with-barrier primitive
that the solver phases (speedy's reassignment sweep, every phase of
pgain, the hiz reduction) are built on. It stands in for the original
PARSEC kernel's TBB task graph / pthread-barrier handshake: partition
a range into disjoint blocks, run one goroutine per block, and don't
proceed until every block finishes.
*/
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Range is the half-open index range [Lo, Hi) assigned to one worker.
type Range struct {
	Worker int
	Lo, Hi int
}

// Split partitions [0,n) into workers contiguous blocks. bsize = n/workers;
// the last worker's block absorbs the remainder, matching the source's
// "bsize = n/nproc; if pid==nproc-1 { k2 = n }" convention exactly.
// workers is clamped to at least 1 and at most n (an empty range is
// never handed to a worker).
func Split(n, workers int) []Range {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n <= 0 {
		return nil
	}

	bsize := n / workers
	ranges := make([]Range, workers)
	for w := 0; w < workers; w++ {
		lo := bsize * w
		hi := lo + bsize
		if w == workers-1 {
			hi = n
		}
		ranges[w] = Range{Worker: w, Lo: lo, Hi: hi}
	}
	return ranges
}

// NumWorkers reports how many blocks Split(n, workers) actually
// produces (workers clamped to [1, n], or 0 if n<=0). Callers that need
// to size a per-worker scratch strip (pgain's work-memory rows, a
// reduction's partials slice) before running For must use this instead
// of the raw workers argument, since For silently clamps it too and the
// two must agree on how many strips exist.
func NumWorkers(n, workers int) int {
	return len(Split(n, workers))
}

// For runs fn once per block of [0,n), split across workers goroutines,
// and blocks until every block has finished (the barrier). fn must only
// touch the disjoint [lo,hi) slice of any shared state plus its own
// worker-indexed strip of scratch memory — that disjointness, not a
// lock, is what makes the concurrent writes safe.
//
// Every block is started regardless; fn returning an error cancels the
// ctx passed to the other blocks (which only matters if fn checks it)
// and For returns the first such error; none of
// the phases in this repository currently produce one, but the shape
// is kept so a future fallible phase doesn't need a different helper.
func For(ctx context.Context, workers, n int, fn func(ctx context.Context, r Range) error) error {
	ranges := Split(n, workers)
	if len(ranges) == 0 {
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		r := r
		g.Go(func() error {
			return fn(gctx, r)
		})
	}
	return g.Wait()
}

// RoundUpStride rounds k+2 up to the nearest multiple of
// cacheLineBytes/8 (a double is 8 bytes), so that each worker's strip
// of pgain's work-memory matrix starts on its own cache line and
// adjacent workers never false-share a line while writing their
// accumulators.
func RoundUpStride(k int, cacheLineBytes int) int {
	stride := k + 2
	cl := cacheLineBytes / 8
	if cl < 1 {
		cl = 1
	}
	if stride%cl != 0 {
		stride = cl * (stride/cl + 1)
	}
	return stride
}
