// Command cosma-bench drives a single cosma.Multiply call at a
// caller-chosen shape and process count and reports the compiled
// strategy, wall-clock time, and achieved GFLOP/s. It is
// kept deliberately minimal — spec.md §1 places a full benchmarking
// harness and dashboard out of scope — existing only so a change to the
// strategy compiler or GEMM kernel has somewhere to be eyeballed end to
// end without writing a throwaway program first.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cosma-go/cosma/cosma"
	"github.com/cosma-go/cosma/internal/log"
	"github.com/cosma-go/cosma/layout"
	"github.com/cosma-go/cosma/scalar"
	"github.com/cosma-go/cosma/transport"
)

func main() {
	m := flag.Int("m", 256, "rows of A and C")
	n := flag.Int("n", 256, "columns of B and C")
	k := flag.Int("k", 256, "columns of A / rows of B")
	p := flag.Int("p", 4, "simulated process count")
	memLimit := flag.Int("mem", 0, "per-process element budget S (0 = unbounded)")
	spec := flag.String("strategy", "", "explicit strategy DSL (e.g. \"pm2,sm2,pk2\"); empty auto-derives")
	tile := flag.Int("tile", 0, "local-tile block size (0 = kernel default)")
	quiet := flag.Bool("quiet", false, "suppress strategy/progress logging")
	flag.Parse()

	logger := log.Default(os.Stdout)
	if *quiet {
		logger = log.Nop()
	}

	opts := []cosma.Option{
		cosma.WithMemoryLimit(*memLimit),
		cosma.WithKind(scalar.Float64),
		cosma.WithLogger(logger),
		cosma.WithTileHeuristic(*tile),
	}
	if *spec != "" {
		opts = append(opts, cosma.WithStrategy(*spec))
	}

	if err := run(*m, *n, *k, *p, opts...); err != nil {
		fmt.Fprintln(os.Stderr, "cosma-bench:", err)
		os.Exit(1)
	}
}

func run(m, n, k, p int, opts ...cosma.Option) error {
	A := layout.NewNative(m, k, p, randomElements(m*k))
	B := layout.NewNative(k, n, p, randomElements(k*n))
	C := layout.NewNative(m, n, p, nil)
	comm := transport.NewWorld(p)

	start := time.Now()
	if err := cosma.Multiply(context.Background(), A, B, C, m, n, k, 1, 0, scalar.NoTrans, scalar.NoTrans, comm, opts...); err != nil {
		return err
	}
	elapsed := time.Since(start)

	flops := 2.0 * float64(m) * float64(n) * float64(k)
	gflops := flops / elapsed.Seconds() / 1e9
	fmt.Printf("m=%d n=%d k=%d p=%d: %s, %.3f GFLOP/s\n", m, n, k, p, elapsed, gflops)

	return nil
}

// randomElements fills a deterministic (not crypto-random) pseudo-data
// buffer so repeated benchmark runs at the same shape are comparable;
// the values themselves are never checked for correctness here.
func randomElements(n int) []complex128 {
	out := make([]complex128, n)
	seed := uint64(1)
	for i := range out {
		seed = seed*6364136223846793005 + 1442695040888963407
		out[i] = complex(float64(seed%1000)/1000, 0)
	}

	return out
}
