// SPDX-License-Identifier: MIT
// Package rref: trace entry emission. Every elementary row operation the
// engine performs is narrated here, through the single Sink capability, so
// buffered, streamed, bounded and count-only outputs share one code path.

package rref

import (
	"github.com/katalvlaran/rref/matrix"
	"github.com/katalvlaran/rref/trace"
)

// Trace wording shared by both entry operations.
const (
	msgPhaseShift   = "Shifting to Reduced Row Echelon Portion of Algorithm\n"
	msgInconsistent = "System of Equations is not Consistent. No solution exists.\n"
	msgUnique       = "System of Equations is Consistent. Unique solution exists.\n"
	msgInfinite     = "System of Equations is Consistent. Infinite solutions exist.\n"
	msgRankBroken   = "Unexpected rank relationship: rank(A|b) exceeds its bound.\n"

	msgNotSquare     = "Error: The input matrix is not square, and thus cannot be inverted.\n"
	msgSingular      = "Error: The input matrix has determinant 0, and thus cannot be inverted.\n"
	msgRankDeficient = "Error: The input matrix is rank deficient, and thus cannot be inverted.\n"
)

// tracer renders trace entries into a reusable scratch line and hands each
// complete line to the sink as one fragment.
type tracer struct {
	sink      trace.Sink
	snapshots bool
	scratch   []byte // reused line buffer; reset before every entry
}

// newTracer builds a tracer over the resolved options.
func newTracer(o options) *tracer {
	return &tracer{sink: o.sink, snapshots: o.snapshots}
}

// flush hands the scratch line to the sink and resets it.
func (t *tracer) flush() {
	t.sink.Write(t.scratch)
	t.scratch = t.scratch[:0]
}

// text emits a fixed message as a single fragment.
func (t *tracer) text(s string) {
	t.scratch = append(t.scratch[:0], s...)
	t.flush()
}

// NOTE on row labels: swap, scale and backward-phase entries label rows
// one-based (R1 is the top row); forward-phase add/sub entries label rows
// zero-based. Consumers that diff trace output byte-for-byte rely on the
// historical labeling, so both bases are kept as-is.

// swapEntry records "[SWP] Row a = (Ra) <=> (Rb)" with one-based labels.
func (t *tracer) swapEntry(row, pivotRow int) {
	t.scratch = append(t.scratch[:0], "[SWP] Row "...)
	t.scratch = trace.AppendInt(t.scratch, int64(row+1))
	t.scratch = append(t.scratch, " = (R"...)
	t.scratch = trace.AppendInt(t.scratch, int64(row+1))
	t.scratch = append(t.scratch, ") <=> (R"...)
	t.scratch = trace.AppendInt(t.scratch, int64(pivotRow+1))
	t.scratch = append(t.scratch, ")\n"...)
	t.flush()
}

// pivotEntry records the refreshed pivot value after a swap.
func (t *tracer) pivotEntry(pivot float64) {
	t.scratch = append(t.scratch[:0], "New Pivot Element: "...)
	t.scratch = trace.AppendDecimal(t.scratch, pivot, trace.StepDecimalPlaces)
	t.scratch = append(t.scratch, '\n')
	t.flush()
}

// forwardStep records a forward-phase elimination entry with zero-based
// labels: op is '+' for an ADD step, '-' for a SUB step.
func (t *tracer) forwardStep(op byte, row, pivotRow int, factor float64) {
	if op == '+' {
		t.scratch = append(t.scratch[:0], "[ADD] Row "...)
	} else {
		t.scratch = append(t.scratch[:0], "[SUB] Row "...)
	}
	t.scratch = trace.AppendInt(t.scratch, int64(row))
	t.scratch = append(t.scratch, " = (R"...)
	t.scratch = trace.AppendInt(t.scratch, int64(row))
	t.scratch = append(t.scratch, ") "...)
	t.scratch = append(t.scratch, op, ' ')
	t.scratch = trace.AppendDecimal(t.scratch, factor, trace.StepDecimalPlaces)
	t.scratch = append(t.scratch, "*(R"...)
	t.scratch = trace.AppendInt(t.scratch, int64(pivotRow))
	t.scratch = append(t.scratch, ")\n"...)
	t.flush()
}

// scaleEntry records "[SCL] Row i = recip * (Ri)" with one-based labels.
func (t *tracer) scaleEntry(row int, recip float64) {
	t.scratch = append(t.scratch[:0], "[SCL] Row "...)
	t.scratch = trace.AppendInt(t.scratch, int64(row+1))
	t.scratch = append(t.scratch, " = "...)
	t.scratch = trace.AppendDecimal(t.scratch, recip, trace.StepDecimalPlaces)
	t.scratch = append(t.scratch, " * (R"...)
	t.scratch = trace.AppendInt(t.scratch, int64(row+1))
	t.scratch = append(t.scratch, ")\n"...)
	t.flush()
}

// factorEntry explains the backward-phase factor: "value / pivot = factor".
func (t *tracer) factorEntry(value, pivot, factor float64) {
	t.scratch = append(t.scratch[:0], "Reciporical Fraction Scalar: "...)
	t.scratch = trace.AppendDecimal(t.scratch, value, trace.StepDecimalPlaces)
	t.scratch = append(t.scratch, " / "...)
	t.scratch = trace.AppendDecimal(t.scratch, pivot, trace.StepDecimalPlaces)
	t.scratch = append(t.scratch, " = "...)
	t.scratch = trace.AppendDecimal(t.scratch, factor, trace.StepDecimalPlaces)
	t.scratch = append(t.scratch, '\n')
	t.flush()
}

// backwardStep records a backward-phase subtraction with one-based labels.
func (t *tracer) backwardStep(row, pivotRow int, factor float64) {
	t.scratch = append(t.scratch[:0], "[SUB] Row "...)
	t.scratch = trace.AppendInt(t.scratch, int64(row+1))
	t.scratch = append(t.scratch, " = (R"...)
	t.scratch = trace.AppendInt(t.scratch, int64(row+1))
	t.scratch = append(t.scratch, ") - "...)
	t.scratch = trace.AppendDecimal(t.scratch, factor, trace.StepDecimalPlaces)
	t.scratch = append(t.scratch, "*(R"...)
	t.scratch = trace.AppendInt(t.scratch, int64(pivotRow+1))
	t.scratch = append(t.scratch, ")\n"...)
	t.flush()
}

// snapshot emits the full matrix, one row per line, tab-separated
// fixed-point values. Suppressed when snapshots are disabled.
func (t *tracer) snapshot(m *matrix.Dense) {
	if !t.snapshots {
		return
	}
	data, rows, cols := m.Data(), m.Rows(), m.Cols()
	var i, j int // loop iterators
	for i = 0; i < rows; i++ {
		t.scratch = t.scratch[:0]
		for j = 0; j < cols; j++ {
			t.scratch = trace.AppendDecimal(t.scratch, data[i*cols+j], trace.SummaryDecimalPlaces)
			t.scratch = append(t.scratch, '\t')
		}
		t.scratch = append(t.scratch, '\n')
		t.flush()
	}
}

// classification emits the Rouché–Capelli verdict line.
func (t *tracer) classification(c Consistency) {
	switch c {
	case Inconsistent:
		t.text(msgInconsistent)
	case UniqueSolution:
		t.text(msgUnique)
	case InfiniteSolutions:
		t.text(msgInfinite)
	}
}

// summary reports the determinant inputs and the determinant itself.
func (t *tracer) summary(diagProduct, denominator float64, sign int, det float64) {
	t.scratch = append(t.scratch[:0], "Product of Diagonal Elements is: "...)
	t.scratch = trace.AppendDecimal(t.scratch, diagProduct, trace.SummaryDecimalPlaces)
	t.scratch = append(t.scratch, '\n')
	t.flush()

	t.scratch = append(t.scratch[:0], "Denominator Value is: "...)
	t.scratch = trace.AppendDecimal(t.scratch, denominator, trace.SummaryDecimalPlaces)
	t.scratch = append(t.scratch, '\n')
	t.flush()

	t.scratch = append(t.scratch[:0], "Swap Multiplier is: "...)
	t.scratch = trace.AppendInt(t.scratch, int64(sign))
	t.scratch = append(t.scratch, '\n')
	t.flush()

	t.scratch = append(t.scratch[:0], "Determinant of non-augmented matrix A is: "...)
	t.scratch = trace.AppendDecimal(t.scratch, det, trace.SummaryDecimalPlaces)
	t.scratch = append(t.scratch, '\n')
	t.flush()
}
