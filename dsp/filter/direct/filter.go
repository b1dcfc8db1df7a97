package direct

import (
	"github.com/cwbudde/algo-sigkit/dsp/buffer"
	"github.com/cwbudde/algo-sigkit/dsp/core"
)

// Filter filters x with the coefficient set c and stores the result in y,
// starting from a zero state.
//
// The first min(len(x), len(y)) outputs follow the difference equation. If
// y is longer than x, the missing input samples are taken as zero and the
// rest of y holds the ring-down of the filter. x and y may be the same
// slice for in-place filtering. c.B must not be empty.
func Filter[T core.Scalar](x, y []T, c Coefficients[T]) {
	newStream(c).run(x, y)
}

// ImpulseResponse fills h with the first len(h) samples of the impulse
// response of c.
func ImpulseResponse[T core.Scalar](h []T, c Coefficients[T]) {
	Filter([]T{1}, h, c)
}

// BiDirectional applies c forward and then backward in time, which cancels
// the phase response of the filter and squares its magnitude response.
//
// The forward pass behaves like Filter, including the ring-down into a y
// longer than x. The filter then keeps running on zero input for the
// configured ring-out length, capturing its decay in a scratch tail. The
// backward pass starts from rest at the far end of that tail, walks the
// tail only to build up state, and then walks y from the last sample to
// the first, overwriting it. x and y may be the same slice.
func BiDirectional[T core.Scalar](x, y []T, c Coefficients[T], opts ...Option) {
	cfg := applyOptions(opts...)
	s := newStream(c)

	s.run(x, y)

	tail := buffer.GetScratch[T](cfg.RingOut)
	defer buffer.PutScratch(tail)
	ringOut := tail.Samples()
	for i := range ringOut {
		ringOut[i] = s.ProcessSample(0)
	}

	s.Reset()
	for i := len(ringOut) - 1; i >= 0; i-- {
		s.ProcessSample(ringOut[i])
	}
	for i := len(y) - 1; i >= 0; i-- {
		y[i] = s.ProcessSample(y[i])
	}
}
