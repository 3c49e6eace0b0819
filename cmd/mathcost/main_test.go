package main

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/randomizedcoder/mathcost/internal/clock"
	"github.com/randomizedcoder/mathcost/internal/report"
)

func scripted() *clock.Script {
	return clock.Elapsed(10000*time.Microsecond, 20000*time.Microsecond, 5000*time.Microsecond)
}

func TestRun_ScriptedClock(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr, scripted()); code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	want := "Sqrt: 1.000000 us per sqrt\n" +
		"Pow:  2.000000 us per sqrt\n" +
		"Min:  0.500000 us per sqrt\n"
	if diff := cmp.Diff(want, stdout.String()); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
	if stderr.Len() != 0 {
		t.Errorf("expected empty stderr, got %q", stderr.String())
	}
}

// Every queue kind yields the same report
func TestRun_QueueKinds(t *testing.T) {
	for _, kind := range []string{"ring", "channel", "sharded"} {
		t.Run(kind, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run([]string{"-queue", kind, "-units", "phase"}, &stdout, &stderr, scripted()); code != exitOK {
				t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
			}
			want := "Sqrt: 1.000000 us per sqrt\n" +
				"Pow:  2.000000 us per pow\n" +
				"Min:  0.500000 us per min\n"
			if diff := cmp.Diff(want, stdout.String()); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRun_RealClock(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-clock", "std"}, &stdout, &stderr, nil); code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	line := regexp.MustCompile(`^(Sqrt: |Pow:  |Min:  )\d+\.\d{6} us per sqrt$`)
	lines := strings.Split(strings.TrimSuffix(stdout.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	for i, prefix := range []string{"Sqrt:", "Pow:", "Min:"} {
		if !strings.HasPrefix(lines[i], prefix) || !line.MatchString(lines[i]) {
			t.Errorf("line %d = %q, want %s line", i, lines[i], prefix)
		}
	}
}

func TestRun_JSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-format", "json", "-n", "100", "-start", "0"}, &stdout, &stderr, scripted()); code != exitOK {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}

	var records []report.Record
	if err := json.Unmarshal(stdout.Bytes(), &records); err != nil {
		t.Fatal(err)
	}
	var accs []float64
	for _, r := range records {
		accs = append(accs, r.Accumulator)
	}
	if diff := cmp.Diff([]float64{100, 200, 300}, accs); diff != "" {
		t.Errorf("accumulators mismatch (-want +got):\n%s", diff)
	}
	if records[2].PerIterationUS != 50 {
		t.Errorf("expected Min per-iteration 50us, got %v", records[2].PerIterationUS)
	}
}

func TestRun_Errors(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want int
	}{
		{"zero iterations", []string{"-n", "0"}, exitUsage},
		{"unknown clock", []string{"-clock", "sundial"}, exitUsage},
		{"unknown format", []string{"-format", "csv"}, exitUsage},
		{"unknown units", []string{"-units", "furlongs"}, exitUsage},
		{"unknown queue", []string{"-queue", "deque"}, exitUsage},
		{"positional", []string{"extra"}, exitUsage},
		{"bad flag", []string{"-bogus"}, exitUsage},
		{"negative sqrt", []string{"-start", "-1e9", "-clock", "std"}, exitError},
		{"help", []string{"-h"}, exitOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr, nil); code != tc.want {
				t.Errorf("exit code = %d, want %d; stderr: %s", code, tc.want, stderr.String())
			}
		})
	}
}
