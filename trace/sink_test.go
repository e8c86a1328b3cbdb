// SPDX-License-Identifier: MIT
package trace_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/rref/trace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer_Accumulates(t *testing.T) {
	var b trace.Buffer // zero value is ready to use
	b.Write([]byte("hello "))
	b.Write([]byte("world"))

	assert.Equal(t, "hello world", b.String())
	assert.Equal(t, 11, b.Len())
	assert.False(t, b.Overflowed())

	b.Reset()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, "", b.String())
}

func TestStream_ForwardsDownstream(t *testing.T) {
	var out bytes.Buffer
	s := trace.NewStream(&out)
	s.Write([]byte("abc"))
	s.Write([]byte("def"))

	assert.Equal(t, "abcdef", out.String())
	assert.Equal(t, 6, s.Len())
	assert.False(t, s.Overflowed())
}

func TestStream_NilWriterCountsOnly(t *testing.T) {
	s := trace.NewStream(nil)
	s.Write([]byte("abcd"))
	assert.Equal(t, 4, s.Len())
	assert.False(t, s.Overflowed())
}

// failWriter errors after accepting a fixed number of bytes.
type failWriter struct{ budget int }

func (f *failWriter) Write(p []byte) (int, error) {
	if len(p) <= f.budget {
		f.budget -= len(p)
		return len(p), nil
	}
	n := f.budget
	f.budget = 0
	return n, errors.New("disk full")
}

func TestStream_DownstreamErrorIsStickyNotFatal(t *testing.T) {
	s := trace.NewStream(&failWriter{budget: 4})
	s.Write([]byte("abc"))
	assert.False(t, s.Overflowed())

	// This write fails downstream; the producer is not interrupted.
	s.Write([]byte("defg"))
	assert.True(t, s.Overflowed())
	assert.Equal(t, 4, s.Len())

	// The flag stays set even if later writes would succeed.
	s.Write([]byte(""))
	assert.True(t, s.Overflowed())
}

func TestCounter_UnlimitedMatchesMaterializedLength(t *testing.T) {
	// Count-only sizing must agree with what a real buffer would hold.
	var b trace.Buffer
	c := trace.NewCounter(0)
	for _, frag := range []string{"[SWP] Row 2", " = (R2) <=> (R1)\n", "", "1.000000\t"} {
		b.Write([]byte(frag))
		c.Write([]byte(frag))
	}
	assert.Equal(t, b.Len(), c.Len())
	assert.False(t, c.Overflowed())
}

func TestCounter_CapacityClampsAndSticks(t *testing.T) {
	c := trace.NewCounter(5)
	c.Write([]byte("abc"))
	require.Equal(t, 3, c.Len())
	require.False(t, c.Overflowed())

	c.Write([]byte("defg"))
	assert.Equal(t, 5, c.Len())
	assert.True(t, c.Overflowed())

	// Sticky: a small write after overflow does not clear the flag.
	c.Write([]byte(""))
	assert.True(t, c.Overflowed())
	assert.Equal(t, 5, c.Len())
}

func TestBounded_CollectsIntoCallerSlice(t *testing.T) {
	buf := make([]byte, 8)
	b := trace.NewBounded(buf)
	b.Write([]byte("abcd"))
	b.Write([]byte("ef"))

	assert.Equal(t, "abcdef", b.String())
	assert.Equal(t, 6, b.Len())
	assert.False(t, b.Overflowed())
	assert.Equal(t, []byte("abcdef"), b.Bytes())
}

func TestBounded_TruncatesAndSticks(t *testing.T) {
	b := trace.NewBounded(make([]byte, 4))
	b.Write([]byte("abcdef"))

	assert.Equal(t, "abcd", b.String())
	assert.True(t, b.Overflowed())

	// Further writes are lost but never panic.
	b.Write([]byte("x"))
	assert.Equal(t, 4, b.Len())
	assert.True(t, b.Overflowed())
}

func TestCountThenAllocate(t *testing.T) {
	// The sizing pattern: measure with a Counter, allocate once, collect
	// into a Bounded, and the bounded run must not overflow.
	frags := [][]byte{[]byte("New Pivot Element: "), []byte("2.000000000"), []byte("\n")}

	c := trace.NewCounter(0)
	for _, f := range frags {
		c.Write(f)
	}

	b := trace.NewBounded(make([]byte, c.Len()))
	for _, f := range frags {
		b.Write(f)
	}
	require.False(t, b.Overflowed())
	assert.Equal(t, "New Pivot Element: 2.000000000\n", b.String())
}
