// Command clockcost measures the cost of reading each clock source.
//
// A phase of the mathcost benchmark brackets its loop with two clock
// reads, so the read cost bounds how short a phase can be measured.
//
// Usage:
//
//	go run ./cmd/clockcost -n 1000000
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/randomizedcoder/mathcost/internal/cancel"
	"github.com/randomizedcoder/mathcost/internal/clock"
)

type result struct {
	name    string
	elapsed time.Duration
	err     error
}

// Sink to keep the read loop from being optimized away
var sink time.Duration

func measure(c clock.Clock, reads int) time.Duration {
	start := time.Now()
	var d time.Duration
	for i := 0; i < reads; i++ {
		d = c.Now()
	}
	sink = d
	return time.Since(start)
}

func main() {
	reads := flag.Int("n", 1_000_000, "number of reads per clock source")
	flag.Parse()
	log.SetPrefix("clockcost: ")
	log.SetFlags(0)
	if *reads <= 0 {
		log.Fatalf("-n must be positive, got %d", *reads)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	interrupted := cancel.NewContext(ctx)

	fmt.Printf("Benchmarking clock reads (%d reads per source)\n", *reads)
	fmt.Printf("Architecture: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Println("─────────────────────────────────────────────────")

	var results []result
	for _, name := range clock.Names() {
		if interrupted.Done() {
			break
		}
		c, err := clock.Lookup(name)
		if err != nil {
			results = append(results, result{name: name, err: err})
			continue
		}
		results = append(results, result{name: name, elapsed: measure(c, *reads)})
	}

	var baseline float64
	for _, r := range results {
		if r.name == clock.NameStd && r.err == nil {
			baseline = float64(r.elapsed.Nanoseconds()) / float64(*reads)
		}
	}

	fmt.Printf("\nResults:\n")
	for _, r := range results {
		if r.err != nil {
			fmt.Printf("  %-14s unavailable: %v\n", r.name, r.err)
			continue
		}
		perRead := float64(r.elapsed.Nanoseconds()) / float64(*reads)
		speedup := 0.0
		if baseline > 0 && perRead > 0 {
			speedup = baseline / perRead
		}
		fmt.Printf("  %-14s %12v  %8.2f ns/read  %6.2fx\n", r.name, r.elapsed, perRead, speedup)
	}

	if err := interrupted.Err(); err != nil {
		log.Fatalf("interrupted: %v", err)
	}
	fmt.Printf("\nNote: speedup is relative to %s (time.Now).\n", clock.NameStd)
}
