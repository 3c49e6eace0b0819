// Package report writes phase measurements.
//
// The default text format is one line per phase:
//
//	Sqrt: 1.000000 us per sqrt
//	Pow:  2.000000 us per sqrt
//	Min:  0.500000 us per sqrt
//
// The unit is "sqrt" for every phase unless Units is UnitsPhase.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/mathcost/internal/phase"
)

var (
	ErrFormat = errors.New("report: unknown format")
	ErrUnits  = errors.New("report: unknown units")
)

// Format selects the report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Units selects the unit label printed after each value.
type Units string

const (
	// UnitsFixed labels every phase "us per sqrt", the traditional output.
	UnitsFixed Units = "fixed"

	// UnitsPhase labels each phase with its own unit, e.g. "us per pow".
	UnitsPhase Units = "phase"
)

// fixedUnit is printed for every phase under UnitsFixed.
const fixedUnit = "sqrt"

// Options controls Write.
type Options struct {
	Format Format
	Units  Units
}

// DefaultOptions returns byte-compatible text output.
func DefaultOptions() Options {
	return Options{Format: FormatText, Units: UnitsFixed}
}

// Validate reports an unknown Format or Units.
func (o Options) Validate() error {
	switch o.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w %q", ErrFormat, o.Format)
	}
	switch o.Units {
	case UnitsFixed, UnitsPhase:
	default:
		return fmt.Errorf("%w %q", ErrUnits, o.Units)
	}
	return nil
}

func (o Options) unit(m phase.Measurement) string {
	if o.Units == UnitsPhase && m.Unit != "" {
		return m.Unit
	}
	return fixedUnit
}

// Record is the machine-readable form of a Measurement.
type Record struct {
	Phase          string  `json:"phase" yaml:"phase"`
	Unit           string  `json:"unit" yaml:"unit"`
	Iterations     int     `json:"iterations" yaml:"iterations"`
	ElapsedUS      float64 `json:"elapsed_us" yaml:"elapsed_us"`
	PerIterationUS float64 `json:"per_iteration_us" yaml:"per_iteration_us"`
	Accumulator    float64 `json:"accumulator" yaml:"accumulator"`
	Result         float64 `json:"result" yaml:"result"`
}

// Records converts measurements for encoding.
func (o Options) Records(ms []phase.Measurement) []Record {
	records := make([]Record, 0, len(ms))
	for _, m := range ms {
		records = append(records, Record{
			Phase:          m.Name,
			Unit:           o.unit(m),
			Iterations:     m.Iterations,
			ElapsedUS:      float64(m.Elapsed) / float64(time.Microsecond),
			PerIterationUS: m.PerIteration(),
			Accumulator:    m.Accumulator,
			Result:         m.Result,
		})
	}
	return records
}

// Write encodes ms to w in the configured format.
func Write(w io.Writer, o Options, ms []phase.Measurement) error {
	if err := o.Validate(); err != nil {
		return err
	}
	switch o.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(o.Records(ms))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(o.Records(ms)); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, m := range ms {
			if err := WriteLine(w, o, m); err != nil {
				return err
			}
		}
		return nil
	}
}

// WriteLine writes the text line for one measurement. The label and its
// colon are padded to six columns, so "Pow:" is followed by two spaces.
func WriteLine(w io.Writer, o Options, m phase.Measurement) error {
	_, err := fmt.Fprintf(w, "%-6s%f us per %s\n", m.Name+":", m.PerIteration(), o.unit(m))
	return err
}
