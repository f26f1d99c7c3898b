package demo

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/roach88/mathdemo/internal/mathutil"
)

// Literal inputs of the entry script.
const (
	SumA      = 5
	SumB      = 10
	RootInput = 16.0
)

// SampleSequence returns the literal sequence printed by the entry script.
func SampleSequence() mathutil.Sequence {
	return mathutil.Sequence{1, 2, 3, 4, 5}
}

// SumStep records the addition step.
type SumStep struct {
	A      int `json:"a" yaml:"a"`
	B      int `json:"b" yaml:"b"`
	Result int `json:"result" yaml:"result"`
}

// RootStep records the guarded square-root step.
// OK is false when the guard fired and Result holds the sentinel.
type RootStep struct {
	Input  float64 `json:"input" yaml:"input"`
	Result float64 `json:"result" yaml:"result"`
	OK     bool    `json:"ok" yaml:"ok"`
}

// Report is the outcome of one run of the entry script.
type Report struct {
	Sum      SumStep           `json:"sum" yaml:"sum"`
	Root     RootStep          `json:"square_root" yaml:"square_root"`
	Sequence mathutil.Sequence `json:"sequence" yaml:"sequence"`
}

// Script holds the inputs of one run. DefaultScript is the fixed demo.
type Script struct {
	A, B      int
	RootInput float64
	Sequence  mathutil.Sequence
}

// DefaultScript returns the literal inputs of the entry script.
func DefaultScript() Script {
	return Script{A: SumA, B: SumB, RootInput: RootInput, Sequence: SampleSequence()}
}

// Compute runs the three steps over s and returns their results.
// Guard diagnostics go to diag.
func (s Script) Compute(diag io.Writer) Report {
	sum := mathutil.Add(s.A, s.B)
	slog.Debug("computed sum", "a", s.A, "b", s.B, "sum", sum)

	root := mathutil.SquareRoot(diag, s.RootInput)
	ok := !mathutil.IsSentinel(root)
	if ok {
		slog.Debug("computed square root", "input", s.RootInput, "root", root)
	} else {
		slog.Debug("square root guard triggered", "input", s.RootInput)
	}

	return Report{
		Sum:      SumStep{A: s.A, B: s.B, Result: sum},
		Root:     RootStep{Input: s.RootInput, Result: root, OK: ok},
		Sequence: s.Sequence,
	}
}

// Compute runs the default script.
func Compute(diag io.Writer) Report {
	return DefaultScript().Compute(diag)
}

// WriteText renders r as the entry script's console output.
// The square-root line is omitted when the guard fired.
func (r Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Sum of %d and %d: %d\n", r.Sum.A, r.Sum.B, r.Sum.Result); err != nil {
		return fmt.Errorf("write sum: %w", err)
	}

	if r.Root.OK {
		if _, err := fmt.Fprintf(w, "Square root of %s: %s\n", formatFloat(r.Root.Input), formatFloat(r.Root.Result)); err != nil {
			return fmt.Errorf("write square root: %w", err)
		}
	}

	if _, err := io.WriteString(w, "Array elements: "); err != nil {
		return fmt.Errorf("write sequence: %w", err)
	}
	if err := mathutil.PrintSequence(w, r.Sequence); err != nil {
		return fmt.Errorf("write sequence: %w", err)
	}
	slog.Debug("printed sequence", "len", len(r.Sequence))

	return nil
}

// Run computes the report for s and writes it to out as text.
func (s Script) Run(out, diag io.Writer) (Report, error) {
	report := s.Compute(diag)
	if err := report.WriteText(out); err != nil {
		return report, err
	}
	return report, nil
}

// Run runs the default script, writing text to out and diagnostics to diag.
func Run(out, diag io.Writer) (Report, error) {
	return DefaultScript().Run(out, diag)
}

// formatFloat uses the shortest representation: 4, not 4.000000.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
