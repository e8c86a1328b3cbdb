// SPDX-License-Identifier: MIT
// Package trace: sink implementations. All four sinks share the engine's
// call sites through the Sink interface, so trace generation is written
// once regardless of whether the output is buffered, streamed, bounded or
// merely counted.

package trace

import "io"

// Sink is an append-only sequence target accepting UTF-8 text fragments.
//
// Writes never fail and never interrupt the producer: a sink that cannot
// accept a full fragment (bounded capacity, downstream writer error) keeps
// as much as it can and raises a sticky overflow flag. Producers check
// Overflowed once, after the whole operation.
type Sink interface {
	// Write appends the fragment to the sink.
	Write(p []byte)

	// Len returns the number of bytes accepted so far.
	Len() int

	// Overflowed reports whether any write was truncated or lost.
	// The flag is sticky: once set it stays set.
	Overflowed() bool
}

// Buffer is a growable accumulating Sink. The zero value is ready to use.
type Buffer struct {
	buf []byte // accumulated bytes
}

// Write appends p to the buffer, growing as needed.
// Complexity: amortized O(len(p)).
func (b *Buffer) Write(p []byte) {
	b.buf = append(b.buf, p...)
}

// Len returns the number of bytes accumulated so far. O(1).
func (b *Buffer) Len() int { return len(b.buf) }

// Overflowed always reports false: a growable buffer cannot overflow.
func (b *Buffer) Overflowed() bool { return false }

// String returns the accumulated text. O(n) for the copy.
func (b *Buffer) String() string { return string(b.buf) }

// Reset drops the accumulated text, retaining capacity for reuse. O(1).
func (b *Buffer) Reset() { b.buf = b.buf[:0] }

// Stream forwards fragments to an io.Writer (typically os.Stdout).
// A downstream write error does not interrupt the producer; it sets the
// sticky overflow flag and subsequent fragments are still attempted.
type Stream struct {
	w        io.Writer
	n        int  // bytes successfully written downstream
	overflow bool // sticky: any downstream short write or error
}

// NewStream wraps w as a Sink. A nil w yields a sink that only counts.
func NewStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Write forwards p downstream, recording failures in the sticky flag.
func (s *Stream) Write(p []byte) {
	if s.w == nil {
		s.n += len(p)
		return
	}
	n, err := s.w.Write(p)
	s.n += n
	if err != nil || n < len(p) {
		s.overflow = true
	}
}

// Len returns the number of bytes written downstream. O(1).
func (s *Stream) Len() int { return s.n }

// Overflowed reports whether any downstream write failed. O(1).
func (s *Stream) Overflowed() bool { return s.overflow }

// Counter is a count-only Sink: appends are accepted but bytes are not
// stored — only the resulting length is tracked. With a positive capacity
// it additionally reports, via the sticky overflow flag, whether a real
// sink of that capacity would have truncated.
type Counter struct {
	n        int  // bytes that would have been stored
	capacity int  // 0 or negative means unlimited
	overflow bool // sticky: an append ran past capacity
}

// NewCounter returns a count-only sink with the given capacity.
// capacity <= 0 means unlimited counting.
func NewCounter(capacity int) *Counter {
	return &Counter{capacity: capacity}
}

// Write counts p without storing it, clamping at capacity.
func (c *Counter) Write(p []byte) {
	if c.capacity <= 0 {
		c.n += len(p)
		return
	}
	if c.n+len(p) <= c.capacity {
		c.n += len(p)
		return
	}
	// Clamp at capacity and raise the sticky flag, as a bounded sink would.
	c.n = c.capacity
	c.overflow = true
}

// Len returns the length the output would have. O(1).
func (c *Counter) Len() int { return c.n }

// Overflowed reports whether counting ran past the configured capacity.
func (c *Counter) Overflowed() bool { return c.overflow }

// Bounded is a fixed-capacity Sink backed by a caller-provided slice —
// the second half of the count-then-allocate pattern: size with a Counter,
// allocate once, then collect into a Bounded.
type Bounded struct {
	buf      []byte // caller-provided backing storage
	n        int    // bytes stored
	overflow bool   // sticky: an append was truncated
}

// NewBounded wraps buf as a fixed-capacity sink writing into buf[:len(buf)].
func NewBounded(buf []byte) *Bounded {
	return &Bounded{buf: buf}
}

// Write copies as much of p as fits; a truncated copy sets the sticky flag.
func (b *Bounded) Write(p []byte) {
	n := copy(b.buf[b.n:], p)
	b.n += n
	if n < len(p) {
		b.overflow = true
	}
}

// Len returns the number of bytes stored. O(1).
func (b *Bounded) Len() int { return b.n }

// Overflowed reports whether any write was truncated. O(1).
func (b *Bounded) Overflowed() bool { return b.overflow }

// Bytes returns the stored prefix of the backing slice. O(1), aliases buf.
func (b *Bounded) Bytes() []byte { return b.buf[:b.n] }

// String returns the stored text. O(n) for the copy.
func (b *Bounded) String() string { return string(b.buf[:b.n]) }
