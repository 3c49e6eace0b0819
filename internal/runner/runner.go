// Package runner times arithmetic phases in tight loops.
//
// A Runner owns the loop-carried state: the accumulator, which grows by
// 1.0 on every iteration of every phase, and the result, which each step
// overwrites. Both carry over from one phase to the next. The clock is
// read once before and once after each loop and nowhere else.
package runner

import (
	"errors"
	"fmt"
	"math"

	"github.com/randomizedcoder/mathcost/internal/cancel"
	"github.com/randomizedcoder/mathcost/internal/clock"
	"github.com/randomizedcoder/mathcost/internal/phase"
	"github.com/randomizedcoder/mathcost/internal/queue"
)

const (
	// DefaultIterations is the number of loop iterations per phase.
	DefaultIterations = 10000

	// DefaultStart is the initial accumulator value.
	DefaultStart = 1000.0
)

var (
	ErrIterations = errors.New("runner: iterations must be positive")
	ErrStart      = errors.New("runner: start value must be finite")
	ErrNoPhases   = errors.New("runner: no phases")
	ErrNoClock    = errors.New("runner: nil clock")
	ErrNonFinite  = errors.New("runner: non-finite result")
	ErrQueueFull  = errors.New("runner: result queue full")
	ErrStopped    = errors.New("runner: stopped")
)

// Config describes a run.
type Config struct {
	Iterations int
	Start      float64
	Phases     []phase.Phase

	// Stop, if set, is polled before each phase.
	Stop cancel.Canceler
}

// DefaultConfig returns the standard Sqrt, Pow, Min run.
func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		Start:      DefaultStart,
		Phases:     phase.Default(),
	}
}

// Validate reports the first problem with c, if any.
func (c Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: got %d", ErrIterations, c.Iterations)
	}
	if math.IsNaN(c.Start) || math.IsInf(c.Start, 0) {
		return fmt.Errorf("%w: got %v", ErrStart, c.Start)
	}
	if len(c.Phases) == 0 {
		return ErrNoPhases
	}
	return nil
}

// State is the loop-carried state between phases.
type State struct {
	Accumulator float64
	Result      float64

	// Applications counts step calls across all phases.
	Applications int
}

// Runner executes phases sequentially against one clock.
// It is not safe for concurrent use.
type Runner struct {
	cfg   Config
	clk   clock.Clock
	state State
}

// New validates cfg and returns a Runner whose accumulator and result
// both start at cfg.Start.
func New(cfg Config, clk clock.Clock) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clk == nil {
		return nil, ErrNoClock
	}
	return &Runner{
		cfg: cfg,
		clk: clk,
		state: State{
			Accumulator: cfg.Start,
			Result:      cfg.Start,
		},
	}, nil
}

// State returns the current loop-carried state.
func (r *Runner) State() State {
	return r.state
}

// Run executes every configured phase in order and pushes one
// Measurement per phase to out.
//
// It stops at the first failing phase. If Stop is done before a phase
// starts, Run returns ErrStopped and out holds the phases completed so far.
func (r *Runner) Run(out queue.Queue[phase.Measurement]) (State, error) {
	for _, p := range r.cfg.Phases {
		if r.cfg.Stop != nil && r.cfg.Stop.Done() {
			return r.state, fmt.Errorf("%w before %s", ErrStopped, p.Name)
		}
		m, err := r.RunPhase(p)
		if err != nil {
			return r.state, err
		}
		if !out.Push(m) {
			return r.state, fmt.Errorf("%w: %s", ErrQueueFull, p.Name)
		}
	}
	return r.state, nil
}

// RunPhase times cfg.Iterations applications of p.
//
// Each iteration increments the accumulator by 1.0 and then replaces the
// result with p.Step(accumulator, result). A clock that steps backwards
// is reported as zero elapsed time. A NaN or infinite result fails the
// phase with ErrNonFinite; the state still advances.
func (r *Runner) RunPhase(p phase.Phase) (phase.Measurement, error) {
	n := r.cfg.Iterations
	acc, result := r.state.Accumulator, r.state.Result
	step := p.Step

	start := r.clk.Now()
	for range n {
		acc++
		result = step(acc, result)
	}
	end := r.clk.Now()

	r.state.Accumulator = acc
	r.state.Result = result
	r.state.Applications += n

	elapsed := end - start
	if elapsed < 0 {
		elapsed = 0
	}
	m := phase.Measurement{
		Name:        p.Name,
		Unit:        p.Unit,
		Iterations:  n,
		Elapsed:     elapsed,
		Accumulator: acc,
		Result:      result,
	}
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return m, fmt.Errorf("%w: %s = %v at accumulator %v", ErrNonFinite, p.Name, result, acc)
	}
	return m, nil
}
