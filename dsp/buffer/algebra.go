package buffer

import (
	"github.com/cwbudde/algo-sigkit/dsp/core"
	"github.com/cwbudde/algo-sigkit/internal/precond"
	"github.com/cwbudde/algo-vecmath"
)

func checkLen3[T any](op string, dst, a, b []T) {
	if len(a) != len(b) || len(dst) != len(a) {
		panic("buffer: " + op + ": slice length mismatch")
	}
}

// Add performs element-wise addition: dst[i] = a[i] + b[i].
// Slices must have equal length. Panics if lengths differ.
// dst may be the same slice as a or b.
func Add[T core.Scalar](dst, a, b []T) {
	checkLen3("Add", dst, a, b)
	if d, ok := any(dst).([]float64); ok {
		vecmath.AddBlock(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// Subtract performs element-wise subtraction: dst[i] = a[i] - b[i].
// Slices must have equal length. Panics if lengths differ.
// dst may be the same slice as a or b.
func Subtract[T core.Scalar](dst, a, b []T) {
	checkLen3("Subtract", dst, a, b)
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

// Multiply performs element-wise multiplication: dst[i] = a[i] * b[i].
// Slices must have equal length. Panics if lengths differ.
// dst may be the same slice as a or b.
func Multiply[T core.Scalar](dst, a, b []T) {
	checkLen3("Multiply", dst, a, b)
	if d, ok := any(dst).([]float64); ok {
		vecmath.MulBlock(d, any(a).([]float64), any(b).([]float64))
		return
	}
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// Scale multiplies every element of buf by factor in place.
func Scale[T core.Scalar](buf []T, factor T) {
	if d, ok := any(buf).([]float64); ok {
		vecmath.ScaleBlockInPlace(d, float64(factor))
		return
	}
	for i := range buf {
		buf[i] *= factor
	}
}

// Clip restricts every element of buf to [lo, hi]. Values below lo are
// tested first, so with lo > hi every element becomes either lo or hi.
func Clip[T core.Scalar](buf []T, lo, hi T) {
	for i, v := range buf {
		if v < lo {
			buf[i] = lo
		} else if v > hi {
			buf[i] = hi
		}
	}
}

// MaxAbs returns the largest absolute value in buf, or zero for an empty
// buffer.
func MaxAbs[T core.Scalar](buf []T) T {
	if d, ok := any(buf).([]float64); ok {
		return T(vecmath.MaxAbs(d))
	}
	var peak T
	for _, v := range buf {
		peak = core.Max(core.Abs(v), peak)
	}
	return peak
}

// Normalize rescales buf so that its largest absolute value becomes
// target. The buffer must contain at least one non-zero element: an
// all-zero buffer divides by zero (Inf/NaN for floats, a runtime panic for
// integers).
func Normalize[T core.Scalar](buf []T, target T) {
	peak := MaxAbs(buf)
	precond.Assert(peak != 0, "buffer: Normalize: maximum absolute value is zero")
	Scale(buf, target/peak)
}

// Fill sets every element of buf to v.
func Fill[T core.Scalar](buf []T, v T) {
	for i := range buf {
		buf[i] = v
	}
}

// FillWithZeros sets every element of buf to the additive identity.
func FillWithZeros[T core.Scalar](buf []T) {
	core.Zero(buf)
}

// Copy copies src into the front of dst with a forward element loop.
// dst must be at least as long as src. Partially overlapping slices are
// not supported; use the built-in copy for memmove semantics.
func Copy[T core.Scalar](dst, src []T) {
	if len(dst) < len(src) {
		panic("buffer: Copy: destination shorter than source")
	}
	for i, v := range src {
		dst[i] = v
	}
}

// Reverse reverses the order of the elements of buf in place.
func Reverse[T core.Scalar](buf []T) {
	last := len(buf) - 1
	for i := 0; i <= (len(buf)-2)/2; i++ {
		core.Swap(&buf[i], &buf[last-i])
	}
}
