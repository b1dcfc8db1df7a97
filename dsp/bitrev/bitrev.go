// Package bitrev implements the bit-reversal permutation of power-of-two
// length buffers, the reordering step that precedes an in-place
// radix-2 decimation-in-time transform.
package bitrev

import (
	"math/bits"

	"github.com/cwbudde/algo-sigkit/dsp/core"
	"github.com/cwbudde/algo-sigkit/internal/precond"
)

// Index reflects the low numBits bits of n. Higher bits of n are ignored.
// For numBits = 3, 1 (001) maps to 4 (100) and 6 (110) to 3 (011).
func Index(n, numBits int) int {
	if numBits <= 0 {
		return 0
	}
	return int(bits.Reverse(uint(n)) >> (bits.UintSize - numBits))
}

// NumBits returns log2(length) for a power-of-two length and -1 otherwise.
func NumBits(length int) int {
	if !core.IsPowerOf2(length) {
		return -1
	}
	return bits.TrailingZeros(uint(length))
}

// OrderOutOfPlace writes out[n] = in[Index(n, numBits)] for every index of
// out. in and out must have length 1<<numBits and must not overlap; both
// conditions are caller obligations checked only in dspdebug builds.
func OrderOutOfPlace[T any](in, out []T, numBits int) {
	precond.Assert(len(out) == 1<<numBits && len(in) == len(out),
		"bitrev: OrderOutOfPlace: length %d/%d is not 1<<%d", len(in), len(out), numBits)
	precond.Assert(!precond.Overlaps(in, out), "bitrev: OrderOutOfPlace: in and out overlap")

	for n := range out {
		out[n] = in[Index(n, numBits)]
	}
}

// OrderInPlace applies the bit-reversal permutation to buf in place by
// swapping each index pair once. len(buf) must be 1<<numBits.
func OrderInPlace[T any](buf []T, numBits int) {
	precond.Assert(len(buf) == 1<<numBits,
		"bitrev: OrderInPlace: length %d is not 1<<%d", len(buf), numBits)

	for n := range buf {
		if r := Index(n, numBits); n < r {
			buf[n], buf[r] = buf[r], buf[n]
		}
	}
}

// Table returns the permutation for a buffer of length 1<<numBits, so that
// OrderOutOfPlace is equivalent to out[n] = in[Table(numBits)[n]].
func Table(numBits int) []int {
	if numBits < 0 {
		return nil
	}
	t := make([]int, 1<<numBits)
	for n := range t {
		t[n] = Index(n, numBits)
	}
	return t
}
