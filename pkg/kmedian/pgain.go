package kmedian

import (
	"context"

	"github.com/albertogg99/PARSEC/cfg"
	"github.com/albertogg99/PARSEC/internal/parallel"
)

// PGain evaluates opening point x as a new facility: if doing so (and
// closing every existing center it renders redundant) lowers total
// cost, it commits the change to ps in place and returns the positive
// savings; otherwise it leaves every Assign, Cost and IsCenter entry
// untouched (only the CenterTable and SwitchMembership scratch arrays
// are rewritten) and returns 0. *k is updated to the post-commit
// center count on a commit.
//
// Of the five phases below (A-E in the comments), A, C, D and E map
// onto the original's CenterTableCount/FixCenter, LowerCost,
// CenterClose and SaveMoney tasks, and B resets scratch state; an
// errgroup barrier (internal/parallel.For's Wait) separates each.
func PGain(ctx context.Context, ps *PointSet, x int, z float64, k *int, workers int) (float64, error) {
	n := ps.N
	T := parallel.NumWorkers(n, workers)
	if T == 0 {
		return 0, nil
	}

	stride := parallel.RoundUpStride(*k, cfg.CacheLineBytes)
	K := stride - 2

	workMem := make([][]float64, T+1)
	for i := range workMem {
		workMem[i] = make([]float64, stride)
	}

	// Phase A: rebuild CenterTable, a dense 0..numCenters-1 index over
	// the open centers, in two barriered passes: count each worker's
	// local open centers, prefix-sum the counts sequentially, then
	// offset each worker's local indices by its prefix.
	err := parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
		local := 0
		for i := r.Lo; i < r.Hi; i++ {
			if ps.IsCenter[i] {
				ps.CenterTable[i] = local
				local++
			}
		}
		workMem[r.Worker][0] = float64(local)
		return nil
	})
	if err != nil {
		return 0, err
	}

	accum := 0
	for w := 0; w < T; w++ {
		local := int(workMem[w][0])
		workMem[w][0] = float64(accum)
		accum += local
	}

	err = parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
		offset := int(workMem[r.Worker][0])
		for i := r.Lo; i < r.Hi; i++ {
			if ps.IsCenter[i] {
				ps.CenterTable[i] += offset
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Phase B: clear SwitchMembership and each worker's own work-memory
	// strip (slot 0 of every strip still holds phase A's prefix offset
	// and must be re-zeroed before phase C accumulates into it).
	err = parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
		for i := r.Lo; i < r.Hi; i++ {
			ps.SwitchMembership[i] = false
		}
		row := workMem[r.Worker]
		for i := range row {
			row[i] = 0
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	for i := range workMem[T] {
		workMem[T][i] = 0
	}

	// Phase C: for every point, compare its current cost to the cost
	// of switching to x. Points that benefit mark SwitchMembership and
	// add to this worker's running cost-of-opening-x; points that
	// don't benefit instead lower the savings tally of their current
	// center (stride slot CenterTable[assign]).
	xPoint := ps.Points[x]
	err = parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
		local := workMem[r.Worker]
		var localCostOpenX float64
		for i := r.Lo; i < r.Hi; i++ {
			p := ps.Points[i]
			xCost := weightedCost(p, xPoint)
			if xCost < p.Cost {
				ps.SwitchMembership[i] = true
				localCostOpenX += float64(xCost - p.Cost)
			} else {
				local[ps.CenterTable[p.Assign]] += float64(p.Cost - xCost)
			}
		}
		local[K+1] = localCostOpenX
		return nil
	})
	if err != nil {
		return 0, err
	}

	// Phase D: for every currently open center, sum its savings tally
	// across every worker's strip plus z; if that total ("low") is
	// positive, the center would be closed if x opens, so count it and
	// further discount cost-of-opening-x by low.
	err = parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
		local := workMem[r.Worker]
		localClose := 0
		for i := r.Lo; i < r.Hi; i++ {
			if !ps.IsCenter[i] {
				continue
			}
			low := z
			for w := 0; w < T; w++ {
				low += workMem[w][ps.CenterTable[i]]
			}
			workMem[T][ps.CenterTable[i]] = low
			if low > 0 {
				localClose++
				local[K+1] -= low
			}
		}
		local[K] = float64(localClose)
		return nil
	})
	if err != nil {
		return 0, err
	}

	glCostOpenX := z
	glNumClose := 0
	for w := 0; w < T; w++ {
		glNumClose += int(workMem[w][K])
		glCostOpenX += workMem[w][K+1]
	}

	if glCostOpenX >= 0 {
		return 0, nil
	}

	// Phase E: commit. Reassign every point that benefits from x or
	// whose center is closing, then close every center whose lower
	// vector entry came out positive, then open x.
	err = parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
		for i := r.Lo; i < r.Hi; i++ {
			p := ps.Points[i]
			closingCenter := workMem[T][ps.CenterTable[p.Assign]] > 0
			if ps.SwitchMembership[i] || closingCenter {
				ps.Points[i].Cost = weightedCost(p, xPoint)
				ps.Points[i].Assign = x
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	err = parallel.For(ctx, workers, n, func(_ context.Context, r parallel.Range) error {
		for i := r.Lo; i < r.Hi; i++ {
			if ps.IsCenter[i] && workMem[T][ps.CenterTable[i]] > 0 {
				ps.IsCenter[i] = false
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	ps.IsCenter[x] = true
	*k = *k + 1 - glNumClose
	return -glCostOpenX, nil
}
