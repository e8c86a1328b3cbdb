// SPDX-License-Identifier: MIT
// Package trace: fixed-point numeric rendering for trace lines.
//
// The contract is truncation toward zero after scaling by a power of ten,
// NOT round-half-even — consumers that diff trace output byte-for-byte
// depend on it, which is why fmt's %f verbs (which round) cannot be used.

package trace

import (
	"math"
	"strconv"
)

// Fractional digit counts used by trace producers.
const (
	// StepDecimalPlaces is the precision of numeric parameters in row
	// operation entries (factors, refreshed pivots).
	StepDecimalPlaces = 9

	// SummaryDecimalPlaces is the precision of the closing summary block
	// (diagonal product, denominator, determinant) and matrix snapshots.
	SummaryDecimalPlaces = 6
)

// AppendDecimal appends v to dst as a fixed-point decimal with exactly
// `places` fractional digits, truncating toward zero, and returns the
// extended slice.
//
// Implementation:
//   - Stage 1: scale v by 10^places and truncate toward zero into an int64
//     (non-finite values and overflow clamp to the int64 range).
//   - Stage 2: emit sign, integer digits, '.', zero-padded fractional digits.
//
// Inputs:
//   - dst: destination slice (append semantics, may be nil).
//   - v: value to render.
//   - places: number of fractional digits, >= 0; 0 renders no decimal point.
//
// Complexity: O(digits), at most one append allocation.
func AppendDecimal(dst []byte, v float64, places int) []byte {
	// Scale into fixed-point space; truncation toward zero is the float→int
	// conversion rule, which is exactly the contract required here.
	scale := pow10(places)
	scaled := v * float64(scale)

	var fixed int64
	switch {
	case math.IsNaN(scaled):
		fixed = 0
	case scaled >= math.MaxInt64:
		fixed = math.MaxInt64
	case scaled <= math.MinInt64:
		fixed = -math.MaxInt64 // mirror the positive clamp so negation below is safe
	default:
		fixed = int64(scaled)
	}

	// Emit the sign once, then work with the magnitude.
	if fixed < 0 {
		dst = append(dst, '-')
		fixed = -fixed
	}

	// Integer part.
	dst = strconv.AppendInt(dst, fixed/scale, 10)
	if places == 0 {
		return dst
	}

	// Decimal point and zero-padded fractional digits, most significant first.
	dst = append(dst, '.')
	frac := fixed % scale
	for q := scale / 10; q >= 1; q /= 10 {
		dst = append(dst, byte('0'+frac/q))
		frac %= q
	}

	return dst
}

// AppendInt appends v in base 10 (row labels, swap multipliers). O(digits).
func AppendInt(dst []byte, v int64) []byte {
	return strconv.AppendInt(dst, v, 10)
}

// pow10 returns 10^places as an int64 for places in [0, 18].
// Values outside that range are clamped to the nearest bound.
func pow10(places int) int64 {
	if places < 0 {
		places = 0
	}
	if places > 18 {
		places = 18
	}
	p := int64(1)
	for i := 0; i < places; i++ {
		p *= 10
	}

	return p
}
