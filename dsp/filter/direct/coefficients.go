package direct

import (
	"errors"

	"github.com/cwbudde/algo-sigkit/dsp/core"
)

// Errors returned when validating coefficient sets.
var (
	ErrEmptyNumerator           = errors.New("direct: empty feed-forward coefficients")
	ErrDenominatorNotNormalized = errors.New("direct: a[0] is not 1")
)

// Coefficients holds a direct-form coefficient set. B are the feed-forward
// (numerator) coefficients, A the feedback (denominator) coefficients with
// A[0] implicitly 1. A may be empty for a pure FIR filter.
type Coefficients[T core.Scalar] struct {
	B []T
	A []T
}

// BOrder returns the feed-forward order len(B)-1.
func (c Coefficients[T]) BOrder() int {
	return len(c.B) - 1
}

// AOrder returns the feedback order, zero when A has at most one element.
func (c Coefficients[T]) AOrder() int {
	return max(len(c.A)-1, 0)
}

// Validate reports whether c describes a usable filter. A non-unit A[0] is
// reported but tolerated by the processing functions, which ignore it.
func (c Coefficients[T]) Validate() error {
	if len(c.B) == 0 {
		return ErrEmptyNumerator
	}
	if len(c.A) > 0 && c.A[0] != 1 {
		return ErrDenominatorNotNormalized
	}
	return nil
}

// clone returns a deep copy so a Stream is not affected by later edits.
func (c Coefficients[T]) clone() Coefficients[T] {
	b := make([]T, len(c.B))
	copy(b, c.B)
	var a []T
	if len(c.A) > 0 {
		a = make([]T, len(c.A))
		copy(a, c.A)
	}
	return Coefficients[T]{B: b, A: a}
}
