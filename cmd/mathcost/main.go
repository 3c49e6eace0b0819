// Command mathcost reports the average cost of sqrt, pow and a
// branch-based min, each timed over a tight loop.
//
// Usage:
//
//	go run ./cmd/mathcost
//	go run ./cmd/mathcost -clock monotonic -units phase -format yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/randomizedcoder/mathcost/internal/cancel"
	"github.com/randomizedcoder/mathcost/internal/clock"
	"github.com/randomizedcoder/mathcost/internal/phase"
	"github.com/randomizedcoder/mathcost/internal/queue"
	"github.com/randomizedcoder/mathcost/internal/report"
	"github.com/randomizedcoder/mathcost/internal/runner"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type options struct {
	cfg    runner.Config
	clock  string
	queue  queue.Kind
	report report.Options
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	fs := flag.NewFlagSet("mathcost", flag.ContinueOnError)
	fs.SetOutput(stderr)

	iterations := fs.Int("n", runner.DefaultIterations, "iterations per phase")
	start := fs.Float64("start", runner.DefaultStart, "initial accumulator value")
	exp := fs.Float64("exp", phase.DefaultExponent, "exponent for the Pow phase")
	clk := fs.String("clock", clock.Default, "timing source: "+strings.Join(clock.Names(), ", "))
	units := fs.String("units", string(report.UnitsFixed), `unit label: "fixed" (us per sqrt for every phase) or "phase"`)
	format := fs.String("format", string(report.FormatText), "report format: text, json or yaml")
	kind := fs.String("queue", string(queue.KindRing), "result buffer: ring, channel or sharded")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %q", fs.Args())
	}

	o := options{
		cfg: runner.Config{
			Iterations: *iterations,
			Start:      *start,
			Phases:     []phase.Phase{phase.Sqrt(), phase.Pow(*exp), phase.Min()},
		},
		clock:  *clk,
		queue:  queue.Kind(*kind),
		report: report.Options{Format: report.Format(*format), Units: report.Units(*units)},
	}
	if err := o.cfg.Validate(); err != nil {
		return options{}, err
	}
	if err := o.report.Validate(); err != nil {
		return options{}, err
	}
	return o, nil
}

// run executes the benchmark and returns the process exit code.
// A nil clk selects the source named by -clock.
func run(args []string, stdout, stderr io.Writer, clk clock.Clock) int {
	logger := log.New(stderr, "mathcost: ", 0)

	o, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		logger.Print(err)
		return exitUsage
	}

	if clk == nil {
		clk, err = clock.Lookup(o.clock)
		if err != nil {
			logger.Print(err)
			return exitUsage
		}
	}

	results, err := queue.New[phase.Measurement](o.queue, len(o.cfg.Phases))
	if err != nil {
		logger.Print(err)
		return exitUsage
	}

	stop := cancel.NewAtomic()
	release := cancel.OnSignal(stop, os.Interrupt)
	defer release()
	o.cfg.Stop = stop

	r, err := runner.New(o.cfg, clk)
	if err != nil {
		logger.Print(err)
		return exitUsage
	}

	_, runErr := r.Run(results)

	// Report whatever completed, even if a later phase failed
	if err := report.Write(stdout, o.report, queue.Drain(results)); err != nil {
		logger.Print(err)
		return exitError
	}
	if runErr != nil {
		logger.Print(runErr)
		return exitError
	}
	return exitOK
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}
