// Package calculus provides discrete integration and differentiation of a
// buffer: running sums and first or higher-order differences.
//
// Both operations run in place, left to right, and can be repeated to reach
// a higher order; each pass consumes the output of the previous one.
package calculus

import "github.com/cwbudde/algo-sigkit/dsp/core"

// Boundary selects the initial condition used for the sample before the
// start of the buffer.
type Boundary int

const (
	// ZeroBoundary assumes the signal is zero before the first sample.
	ZeroBoundary Boundary = iota

	// Periodic treats the buffer as one period of a periodic signal, so the
	// sample before the first is the last sample.
	Periodic
)

// String returns a human-readable boundary name.
func (b Boundary) String() string {
	switch b {
	case ZeroBoundary:
		return "zero"
	case Periodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// CumulativeSum replaces buf with its running sum y[n] = x[n] + y[n-1],
// repeated order times. Every pass starts from y[-1] = 0.
//
// The boundary argument is accepted for symmetry with Difference, but a
// periodic initial condition for the running sum is not defined yet, so
// Periodic currently behaves like ZeroBoundary.
func CumulativeSum[T core.Scalar](buf []T, order int, boundary Boundary) {
	for o := 0; o < order; o++ {
		var y1 T
		for n, x := range buf {
			y1 += x
			buf[n] = y1
		}
	}
}

// Difference replaces buf with its first difference y[n] = x[n] - x[n-1],
// repeated order times. With Periodic, x[-1] is the last sample of the
// buffer at the start of each pass; otherwise it is zero.
//
// Multiplying the result by the sample rate gives a numeric derivative.
func Difference[T core.Scalar](buf []T, order int, boundary Boundary) {
	if len(buf) == 0 {
		return
	}
	for o := 0; o < order; o++ {
		var x1 T
		if boundary == Periodic {
			x1 = buf[len(buf)-1]
		}
		for n, x := range buf {
			buf[n] = x - x1
			x1 = x
		}
	}
}
