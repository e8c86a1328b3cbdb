// SPDX-License-Identifier: MIT

// Package rref: functional configuration for elimination runs.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).

package rref

import (
	"math"
	"os"

	"github.com/katalvlaran/rref/trace"
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTolerance is the numeric tolerance under which elimination
	// residue reads as exact zero (rank counting, backward pivot skip).
	DefaultTolerance = 1e-6

	// DefaultSnapshots controls whether a full-matrix snapshot is emitted
	// after each row step. true ⇒ step-by-step display is available in the
	// trace; disable for count-only sizing passes.
	DefaultSnapshots = true
)

// Internal panic messages (no magic strings).
const (
	panicToleranceInvalid = "rref: WithTolerance: eps must be finite, non-negative"
	panicSinkNil          = "rref: WithSink: sink must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// It is intentionally unexported to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type options struct {
	eps       float64    // >= 0; DefaultTolerance
	sink      trace.Sink // non-nil after gatherOptions
	snapshots bool       // DefaultSnapshots
}

// WithTolerance sets the zero tolerance used for rank counting and the
// backward phase's zero-pivot skip. Panics on NaN, ±Inf or negative eps.
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithSink routes the operation trace into s instead of the default
// diagnostic stream (stdout). Panics on a nil sink.
func WithSink(s trace.Sink) Option {
	if s == nil {
		panic(panicSinkNil)
	}

	return func(o *options) { o.sink = s }
}

// WithSnapshots toggles full-matrix snapshots after each row step.
func WithSnapshots(enabled bool) Option {
	return func(o *options) { o.snapshots = enabled }
}

// gatherOptions applies opts over the documented defaults.
// When no sink is configured, an equivalent capability emitting to the
// diagnostic stream (stdout) is substituted.
func gatherOptions(opts ...Option) options {
	o := options{
		eps:       DefaultTolerance,
		snapshots: DefaultSnapshots,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sink == nil {
		o.sink = trace.NewStream(os.Stdout)
	}

	return o
}
