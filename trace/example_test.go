// SPDX-License-Identifier: MIT
package trace_test

import (
	"fmt"

	"github.com/katalvlaran/rref/trace"
)

// ExampleBuffer collects trace fragments into a growable buffer.
func ExampleBuffer() {
	var b trace.Buffer
	b.Write([]byte("[SCL] Row 1 = "))
	b.Write([]byte("0.500000000"))
	b.Write([]byte(" * (R1)\n"))

	fmt.Print(b.String())
	fmt.Println("bytes:", b.Len())
	// Output:
	// [SCL] Row 1 = 0.500000000 * (R1)
	// bytes: 33
}

// ExampleCounter demonstrates count-then-allocate: size the output with a
// count-only pass, allocate once, then collect into a bounded sink.
func ExampleCounter() {
	frags := [][]byte{
		[]byte("New Pivot Element: "),
		[]byte("3.000000000"),
		[]byte("\n"),
	}

	c := trace.NewCounter(0)
	for _, f := range frags {
		c.Write(f)
	}

	b := trace.NewBounded(make([]byte, c.Len()))
	for _, f := range frags {
		b.Write(f)
	}

	fmt.Print(b.String())
	fmt.Println("overflowed:", b.Overflowed())
	// Output:
	// New Pivot Element: 3.000000000
	// overflowed: false
}
