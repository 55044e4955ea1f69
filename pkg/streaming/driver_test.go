package streaming

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertogg99/PARSEC/pkg/kmedian"
	"github.com/albertogg99/PARSEC/pkg/pstream"
)

func TestDriverRunProducesCentersWithinBand(t *testing.T) {
	g := kmedian.NewRNG(1)
	in := pstream.NewSimStream(100, g.Float64)

	d := &Driver{
		Dim:         3,
		ChunkSize:   25,
		ClusterSize: 20,
		KMin:        2,
		KMax:        4,
		Workers:     4,
		RNG:         kmedian.NewRNG(1),
	}

	res, err := d.Run(context.Background(), in)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Centers.NumCenters(), 4)
	assert.GreaterOrEqual(t, res.Centers.NumCenters(), 1)
	assert.Len(t, res.ChunkCosts, 4)

	var totalWeight float64
	for i := 0; i < res.Centers.N; i++ {
		if res.Centers.IsCenter[i] {
			totalWeight += float64(res.Centers.Points[i].Weight)
		}
	}
	assert.InDelta(t, 100, totalWeight, 1e-3)
}

func TestDriverRejectsCenterOverflow(t *testing.T) {
	g := kmedian.NewRNG(1)
	in := pstream.NewSimStream(200, g.Float64)

	d := &Driver{
		Dim:         2,
		ChunkSize:   50,
		ClusterSize: 1, // far too small to hold the promoted centers
		KMin:        2,
		KMax:        4,
		Workers:     2,
		RNG:         kmedian.NewRNG(1),
	}

	_, err := d.Run(context.Background(), in)
	assert.ErrorIs(t, err, ErrCenterOverflow)
}

func TestDriverSingleChunkLandsWithinBand(t *testing.T) {
	g := kmedian.NewRNG(5)
	in := pstream.NewSimStream(30, g.Float64)

	d := &Driver{
		Dim:         2,
		ChunkSize:   30,
		ClusterSize: 10,
		KMin:        2,
		KMax:        3,
		Workers:     2,
		RNG:         kmedian.NewRNG(5),
	}

	res, err := d.Run(context.Background(), in)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Centers.NumCenters(), 2)
	assert.LessOrEqual(t, res.Centers.NumCenters(), 3)
}
