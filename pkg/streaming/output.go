package streaming

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/albertogg99/PARSEC/pkg/kmedian"
)

// WriteCenters writes the final clustering result in the legacy text
// format: for every point that is currently an open center, its
// original stream ID, its weight (prefixed with '%'), its coordinates,
// then a blank line. ids must be indexed the same way as ps.Points.
func WriteCenters(w io.Writer, ps *kmedian.PointSet, ids []int64) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < ps.N; i++ {
		if !ps.IsCenter[i] {
			continue
		}
		if _, err := fmt.Fprintf(bw, "%d\n", ids[i]); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%%%v\n", ps.Points[i].Weight); err != nil {
			return err
		}
		for d := 0; d < ps.Dim; d++ {
			if _, err := fmt.Fprintf(bw, "%v ", ps.Points[i].Coord[d]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprint(bw, "\n\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCentersFile opens path and writes the centers to it, per
// WriteCenters.
func WriteCentersFile(path string, ps *kmedian.PointSet, ids []int64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("streaming: opening output file: %w", err)
	}
	defer f.Close()
	return WriteCenters(f, ps, ids)
}

// WriteReport dumps Diagnose(ps) as JSON, one object per open center.
// Purely a companion to WriteCenters for callers that opted in (the
// CLI's --report flag); nothing downstream reads this file back in.
func WriteReport(w io.Writer, ps *kmedian.PointSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Diagnose(ps))
}

// WriteReportFile opens path and writes the diagnostics report to it,
// per WriteReport.
func WriteReportFile(path string, ps *kmedian.PointSet) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("streaming: opening report file: %w", err)
	}
	defer f.Close()
	return WriteReport(f, ps)
}
