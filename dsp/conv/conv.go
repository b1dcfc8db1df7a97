package conv

import (
	"errors"

	"github.com/cwbudde/algo-sigkit/dsp/buffer"
	"github.com/cwbudde/algo-sigkit/dsp/core"
	"github.com/cwbudde/algo-sigkit/internal/precond"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// blockThreshold is the kernel length from which the float64 path
// accumulates whole scaled kernels instead of single products.
const blockThreshold = 4

// Direct performs direct time-domain linear convolution of x and h.
// Returns a new slice of length len(x) + len(h) - 1.
func Direct[T core.Scalar](x, h []T) ([]T, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if len(h) == 0 {
		return nil, ErrEmptyKernel
	}

	y := make([]T, len(x)+len(h)-1)
	DirectTo(y, x, h)
	return y, nil
}

// DirectTo writes the linear convolution of x and h into y:
//
//	y[n] = sum_k h[k] * x[n-k]
//
// over the indices where both operands exist. y is zeroed first and must
// hold at least len(x)+len(h)-1 elements; samples past that length stay
// zero. y must not overlap x or h. Empty x or h leaves y all zero.
func DirectTo[T core.Scalar](y, x, h []T) {
	precond.Assert(!precond.Overlaps(y, x) && !precond.Overlaps(y, h),
		"conv: DirectTo: output overlaps an input")

	core.Zero(y)
	if len(x) == 0 || len(h) == 0 {
		return
	}
	if len(y) < len(x)+len(h)-1 {
		panic("conv: DirectTo: output shorter than len(x)+len(h)-1")
	}

	if yf, ok := any(y).([]float64); ok && len(h) >= blockThreshold {
		directBlock(yf, any(x).([]float64), any(h).([]float64))
		return
	}

	m := len(h)
	for i, xi := range x {
		out := y[i : i+m]
		for k, hk := range h {
			out[k] += hk * xi
		}
	}
}

// directBlock accumulates x[i]*h into y[i:] for every input sample.
func directBlock(y, x, h []float64) {
	tmp := buffer.GetScratch[float64](len(h))
	defer buffer.PutScratch(tmp)
	scaled := tmp.Samples()

	for i, xi := range x {
		vecmath.ScaleBlock(scaled, h, xi)
		vecmath.AddBlockInPlace(y[i:i+len(h)], scaled)
	}
}

// InPlace convolves the signal x[:xLen] with h and stores the result in
// x[:xLen+len(h)-1]. x must have at least that many elements. The signal
// and kernel are copied to pooled scratch first, so h may share memory
// with x.
func InPlace[T core.Scalar](x []T, xLen int, h []T) {
	if xLen <= 0 || len(h) == 0 {
		return
	}
	n := xLen + len(h) - 1
	if len(x) < n {
		panic("conv: InPlace: buffer shorter than xLen+len(h)-1")
	}

	xs := buffer.GetScratch[T](xLen)
	defer buffer.PutScratch(xs)
	hs := buffer.GetScratch[T](len(h))
	defer buffer.PutScratch(hs)

	copy(xs.Samples(), x[:xLen])
	copy(hs.Samples(), h)

	DirectTo(x[:n], xs.Samples(), hs.Samples())
}
