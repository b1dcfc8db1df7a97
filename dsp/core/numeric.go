package core

import "math"

// Scalar is the element constraint shared by the buffer, reduction,
// filtering and convolution routines. Every member type converts the
// untyped constants 0 and 1 to its additive and multiplicative
// identities, is totally ordered, and supports unary negation and the
// arithmetic operators + - * / with their compound forms.
//
// Unsigned integers are excluded since negation and the subtracting
// recurrences are not meaningful for them.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float restricts Scalar to floating-point element types.
type Float interface {
	~float32 | ~float64
}

// Abs returns |x|. Zero (including negative zero) maps to the additive
// identity.
func Abs[T Scalar](x T) T {
	if x > 0 {
		return x
	}
	if x < 0 {
		return -x
	}
	return 0
}

// Max returns the larger of a and b, or a when neither compares greater.
func Max[T Scalar](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b, or b when neither compares smaller.
func Min[T Scalar](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Swap exchanges the values pointed to by a and b.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
