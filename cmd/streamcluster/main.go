// Command streamcluster runs the streaming k-median solver over a
// synthetic or file-backed point stream and writes the resulting
// centers to a text file.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/albertogg99/PARSEC/cfg"
	"github.com/albertogg99/PARSEC/pkg/kmedian"
	"github.com/albertogg99/PARSEC/pkg/pstream"
	"github.com/albertogg99/PARSEC/pkg/streaming"
)

var reportPath string

func main() {
	root := &cobra.Command{
		Use:   "streamcluster k1 k2 d n chunksize clustersize infile outfile nproc",
		Short: "Streaming online k-median clustering",
		Args:  cobra.ExactArgs(9),
		RunE:  run,
	}
	root.Flags().StringVar(&reportPath, "report", "", "write a JSON per-center cost diagnostics report to this path")
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	p, err := parseArgs(args)
	if err != nil {
		return err
	}

	rng := kmedian.NewRNG(cfg.Seed)
	var in pstream.Stream
	if p.n > 0 {
		in = pstream.NewSimStream(p.n, rng.Float64)
	} else {
		fs, err := pstream.NewFileStream(p.infile)
		if err != nil {
			return fmt.Errorf("opening input file %q: %w", p.infile, err)
		}
		defer fs.Close()
		in = fs
	}

	driver := &streaming.Driver{
		Dim:         p.dim,
		ChunkSize:   p.chunksize,
		ClusterSize: p.clustersize,
		KMin:        p.k1,
		KMax:        p.k2,
		Workers:     p.nproc,
		RNG:         rng,
		Logger:      streaming.NewDefaultLogger(),
	}

	res, err := driver.Run(context.Background(), in)
	if err != nil {
		return err
	}

	if err := streaming.WriteCentersFile(p.outfile, res.Centers, res.CenterIDs); err != nil {
		return fmt.Errorf("writing output file %q: %w", p.outfile, err)
	}

	if reportPath != "" {
		if err := streaming.WriteReportFile(reportPath, res.Centers); err != nil {
			return fmt.Errorf("writing report file %q: %w", reportPath, err)
		}
	}
	return nil
}

type params struct {
	k1, k2      int
	dim         int
	n           int
	chunksize   int
	clustersize int
	infile      string
	outfile     string
	nproc       int
}

func parseArgs(args []string) (params, error) {
	ints := make([]int, 0, 6)
	for _, idx := range []int{0, 1, 2, 3, 4, 5} {
		v, err := strconv.Atoi(args[idx])
		if err != nil {
			return params{}, fmt.Errorf("argument %d (%q) is not an integer", idx+1, args[idx])
		}
		ints = append(ints, v)
	}
	nproc, err := strconv.Atoi(args[8])
	if err != nil {
		return params{}, fmt.Errorf("argument 9 (%q) is not an integer", args[8])
	}

	p := params{
		k1: ints[0], k2: ints[1], dim: ints[2], n: ints[3],
		chunksize: ints[4], clustersize: ints[5],
		infile: args[6], outfile: args[7], nproc: nproc,
	}

	switch {
	case p.k1 <= 0 || p.k2 <= 0:
		return params{}, fmt.Errorf("k1 and k2 must be positive, got k1=%d k2=%d", p.k1, p.k2)
	case p.k1 > p.k2:
		return params{}, fmt.Errorf("k1 (%d) must be <= k2 (%d)", p.k1, p.k2)
	case p.dim <= 0:
		return params{}, fmt.Errorf("d must be positive, got %d", p.dim)
	case p.chunksize <= 0:
		return params{}, fmt.Errorf("chunksize must be positive, got %d", p.chunksize)
	case p.clustersize <= 0:
		return params{}, fmt.Errorf("clustersize must be positive, got %d", p.clustersize)
	case p.nproc <= 0:
		return params{}, fmt.Errorf("nproc must be positive, got %d", p.nproc)
	}
	return p, nil
}
