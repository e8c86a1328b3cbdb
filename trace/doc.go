// Package trace provides the append-only text sinks the elimination engine
// narrates into, plus the fixed-point numeric formatting used by the trace.
//
// One Sink capability, four implementations:
//
//   - Buffer  — growable accumulating sink; read back with String().
//   - Stream  — forwards fragments to an io.Writer (console output).
//   - Counter — count-only mode: appends are accepted but bytes are not
//     stored, only the resulting length is tracked. Useful to pre-size an
//     output buffer before allocating it (count-then-allocate pattern).
//   - Bounded — fixed-capacity sink backed by a caller-provided slice.
//
// Capacity-limited sinks never interrupt a write: a truncated append sets a
// sticky overflow flag instead, and callers check Overflowed() after the
// full operation completes.
//
// Numeric rendering is fixed-point with a caller-chosen number of
// fractional digits, truncated toward zero (NOT rounded); see AppendDecimal.
package trace
