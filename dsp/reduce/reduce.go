package reduce

import (
	"slices"

	"github.com/cwbudde/algo-sigkit/dsp/buffer"
	"github.com/cwbudde/algo-sigkit/dsp/core"
	"github.com/cwbudde/algo-sigkit/internal/precond"
	"github.com/cwbudde/algo-vecmath"
)

// Sum returns the sum of all elements, or zero for an empty buffer.
//
// []float64 input goes through the vectorised kernel, which keeps several
// partial sums and may round differently from a left-to-right fold. The
// difference is bounded by len(buf)*eps*sum(|x|). All other element types
// are accumulated strictly in index order.
func Sum[T core.Scalar](buf []T) T {
	if d, ok := any(buf).([]float64); ok {
		return T(vecmath.Sum(d))
	}
	var acc T
	for _, v := range buf {
		acc += v
	}
	return acc
}

// Product returns the product of all elements, or one for an empty buffer.
func Product[T core.Scalar](buf []T) T {
	acc := T(1)
	for _, v := range buf {
		acc *= v
	}
	return acc
}

// Mean returns Sum(buf) / len(buf). buf must not be empty, and len(buf)
// must be representable in T: an []int8 holds at most 127 elements here.
// Narrow integer sums wrap like any other T arithmetic.
func Mean[T core.Scalar](buf []T) T {
	precond.Assert(len(buf) > 0, "reduce: Mean of empty buffer")
	precond.Assert(int(T(len(buf))) == len(buf), "reduce: Mean: length %d overflows element type", len(buf))
	return Sum(buf) / T(len(buf))
}

// RemoveMean subtracts the mean from every element in place.
func RemoveMean[T core.Scalar](buf []T) {
	if len(buf) == 0 {
		return
	}
	m := Mean(buf)
	for i := range buf {
		buf[i] -= m
	}
}

// MaxIndex returns the index of the first maximum. buf must not be empty.
func MaxIndex[T core.Scalar](buf []T) int {
	precond.Assert(len(buf) > 0, "reduce: MaxIndex of empty buffer")
	best, index := buf[0], 0
	for i, v := range buf {
		if v > best {
			best, index = v, i
		}
	}
	return index
}

// MinIndex returns the index of the first minimum. buf must not be empty.
func MinIndex[T core.Scalar](buf []T) int {
	precond.Assert(len(buf) > 0, "reduce: MinIndex of empty buffer")
	best, index := buf[0], 0
	for i, v := range buf {
		if v < best {
			best, index = v, i
		}
	}
	return index
}

// MaxValue returns the largest element. buf must not be empty.
func MaxValue[T core.Scalar](buf []T) T {
	return buf[MaxIndex(buf)]
}

// MinValue returns the smallest element. buf must not be empty.
func MinValue[T core.Scalar](buf []T) T {
	return buf[MinIndex(buf)]
}

// MaxAbs returns the largest absolute value, or zero for an empty buffer.
func MaxAbs[T core.Scalar](buf []T) T {
	return buffer.MaxAbs(buf)
}

// Median returns the middle element of a sorted copy of buf, or the mean
// of the two central elements for even lengths (truncated for integer
// types). buf is not modified and must not be empty.
func Median[T core.Scalar](buf []T) T {
	n := len(buf)
	precond.Assert(n > 0, "reduce: Median of empty buffer")

	tmp := buffer.GetScratch[T](n)
	defer buffer.PutScratch(tmp)
	sorted := tmp.Samples()
	copy(sorted, buf)
	slices.Sort(sorted)

	if n%2 == 1 {
		return sorted[(n-1)/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
