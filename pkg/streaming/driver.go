/*
Package streaming implements the two-level hierarchical clustering
driver: cluster each chunk independently, promote its centers into an
accumulated point set weighted by cluster size, and re-cluster that
accumulated set once the stream is exhausted.
*/
package streaming

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/albertogg99/PARSEC/pkg/kmedian"
	"github.com/albertogg99/PARSEC/pkg/pstream"
)

// ErrCenterOverflow is returned by Run when a chunk's open centers
// would push the accumulated center set past ClusterSize. The caller
// needs a bigger ClusterSize or a smaller ChunkSize; there's no
// recovery within a run.
var ErrCenterOverflow = errors.New("streaming: accumulated centers exceed clustersize")

// Driver holds the parameters of one streaming clustering run.
type Driver struct {
	Dim         int
	ChunkSize   int
	ClusterSize int
	KMin        int
	KMax        int
	Workers     int
	RNG         *kmedian.RNG
	Logger      Logger
}

// Result is the outcome of a Run: the final, re-clustered center
// point set, and centerIDs[i] naming the original global stream
// index of the point that first promoted Points[i] into the
// accumulated set (used by WriteCenters for the output file's ID
// column).
type Result struct {
	Centers    *kmedian.PointSet
	CenterIDs  []int64
	FinalCost  float64
	ChunkCosts []float64
}

// Run reads in to exhaustion in ChunkSize-point chunks, clusters each
// chunk, and folds its centers into an accumulated PointSet capped at
// ClusterSize. Once the stream reports io.EOF it re-clusters the
// accumulated centers and returns the final result.
func (d *Driver) Run(ctx context.Context, in pstream.Stream) (*Result, error) {
	centers := kmedian.NewPointSet(d.ClusterSize, d.Dim)
	centerIDs := make([]int64, 0, d.ClusterSize)
	centerN := 0
	var idOffset int64
	var chunkCosts []float64
	chunkIdx := 0

	for {
		chunk := kmedian.NewPointSet(d.ChunkSize, d.Dim)
		nRead, err := in.Read(chunk.Coords, d.Dim, d.ChunkSize)
		eof := errors.Is(err, io.EOF)
		if err != nil && !eof {
			return nil, fmt.Errorf("streaming: reading chunk %d: %w", chunkIdx, err)
		}
		if nRead == 0 {
			if !eof {
				return nil, fmt.Errorf("streaming: chunk %d: stream returned no points without EOF", chunkIdx)
			}
			break
		}

		chunk.SetN(nRead)
		for i := 0; i < nRead; i++ {
			chunk.Points[i].Weight = 1.0
		}

		kfinal, cost, err := kmedian.KMedian(ctx, chunk, d.KMin, d.KMax, d.RNG, d.Workers)
		if err != nil {
			return nil, fmt.Errorf("streaming: clustering chunk %d: %w", chunkIdx, err)
		}
		kmedian.ContCenters(chunk)
		chunkCosts = append(chunkCosts, cost)

		if d.Logger != nil {
			d.Logger.LogChunk(chunkIdx, nRead, kfinal, cost)
		}

		if centerN+kfinal > d.ClusterSize {
			return nil, fmt.Errorf("streaming: chunk %d: accumulated centers %d + %d new centers exceeds clustersize %d: %w",
				chunkIdx, centerN, kfinal, d.ClusterSize, ErrCenterOverflow)
		}

		// KMedian shuffles Points; each Coord still views its read slot.
		readPos := make(map[*float32]int, nRead)
		for j := 0; j < nRead; j++ {
			readPos[&chunk.Coords[j*d.Dim]] = j
		}
		for i := 0; i < chunk.N; i++ {
			if !chunk.IsCenter[i] {
				continue
			}
			copy(centers.Points[centerN].Coord, chunk.Points[i].Coord)
			centers.Points[centerN].Weight = chunk.Points[i].Weight
			centerIDs = append(centerIDs, idOffset+int64(readPos[&chunk.Points[i].Coord[0]]))
			centerN++
		}

		idOffset += int64(nRead)
		chunkIdx++
		if eof {
			break
		}
	}

	centers.SetN(centerN)
	kfinal, finalCost, err := kmedian.KMedian(ctx, centers, d.KMin, d.KMax, d.RNG, d.Workers)
	if err != nil {
		return nil, fmt.Errorf("streaming: final re-clustering: %w", err)
	}
	kmedian.ContCenters(centers)

	// Reorder the IDs to follow any shuffle of centers.Points.
	promotedPos := make(map[*float32]int, centerN)
	for j := 0; j < centerN; j++ {
		promotedPos[&centers.Coords[j*d.Dim]] = j
	}
	finalIDs := make([]int64, centerN)
	for i := 0; i < centerN; i++ {
		finalIDs[i] = centerIDs[promotedPos[&centers.Points[i].Coord[0]]]
	}

	if d.Logger != nil {
		d.Logger.LogSummary(chunkIdx, centers.N, kfinal, finalCost)
	}

	return &Result{
		Centers:    centers,
		CenterIDs:  finalIDs,
		FinalCost:  finalCost,
		ChunkCosts: chunkCosts,
	}, nil
}
