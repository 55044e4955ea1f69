package streaming

import "log"

// Logger receives progress notifications from a Driver run. It has no
// bearing on the clustering result; it exists purely so a caller can
// observe a long streaming run without the driver itself picking a
// specific output format.
type Logger interface {
	// LogChunk is called once per chunk clustered, after ContCenters
	// has finalized that chunk's center coordinates.
	LogChunk(chunkIndex, pointsRead, kfinal int, cost float64)
	// LogSummary is called once, after the final re-clustering pass
	// over the accumulated centers.
	LogSummary(chunksProcessed, totalCenters, kfinal int, cost float64)
}

type defaultLogger struct{}

// NewDefaultLogger returns a Logger that writes one line per chunk and
// one summary line via the standard library logger.
func NewDefaultLogger() Logger {
	return defaultLogger{}
}

func (defaultLogger) LogChunk(chunkIndex, pointsRead, kfinal int, cost float64) {
	log.Printf("chunk %d: %d points -> %d centers, cost %.4f", chunkIndex, pointsRead, kfinal, cost)
}

func (defaultLogger) LogSummary(chunksProcessed, totalCenters, kfinal int, cost float64) {
	log.Printf("summary: %d chunks, %d accumulated centers -> %d final centers, cost %.4f",
		chunksProcessed, totalCenters, kfinal, cost)
}
