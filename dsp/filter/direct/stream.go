package direct

import "github.com/cwbudde/algo-sigkit/dsp/core"

// Stream is a direct-form filter that keeps its delay lines between calls,
// so a long signal can be processed block by block with the same result as
// a single Filter call.
type Stream[T core.Scalar] struct {
	c Coefficients[T]
	x window[T] // past inputs
	y window[T] // past outputs
}

// NewStream creates a Stream with zero state. The coefficients are copied.
func NewStream[T core.Scalar](c Coefficients[T]) (*Stream[T], error) {
	if len(c.B) == 0 {
		return nil, ErrEmptyNumerator
	}
	return newStream(c.clone()), nil
}

// newStream wraps c without copying; callers must keep c unchanged while
// the stream is in use.
func newStream[T core.Scalar](c Coefficients[T]) *Stream[T] {
	if len(c.B) == 0 {
		panic(ErrEmptyNumerator.Error())
	}
	return &Stream[T]{
		c: c,
		x: newWindow[T](c.BOrder()),
		y: newWindow[T](c.AOrder()),
	}
}

// ProcessSample filters one input sample and returns y[n].
func (s *Stream[T]) ProcessSample(x T) T {
	acc := s.c.B[0] * x
	acc = s.x.mulAdd(acc, s.c.B)
	acc = s.y.mulSub(acc, s.c.A)

	s.x.push(x)
	s.y.push(acc)

	return acc
}

// ProcessBlock filters buf in place.
func (s *Stream[T]) ProcessBlock(buf []T) {
	for i, x := range buf {
		buf[i] = s.ProcessSample(x)
	}
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
func (s *Stream[T]) ProcessBlockTo(dst, src []T) {
	if len(dst) != len(src) {
		panic("direct: ProcessBlockTo: slice length mismatch")
	}
	for i, x := range src {
		dst[i] = s.ProcessSample(x)
	}
}

// run filters x into y. Output samples past the end of x are computed with
// zero input, which lets the filter ring down into a longer y. x and y may
// be the same slice.
func (s *Stream[T]) run(x, y []T) {
	n := core.Min(len(x), len(y))
	for i := 0; i < n; i++ {
		y[i] = s.ProcessSample(x[i])
	}
	for i := n; i < len(y); i++ {
		y[i] = s.ProcessSample(0)
	}
}

// Reset clears both delay lines to zero.
func (s *Stream[T]) Reset() {
	s.x.reset()
	s.y.reset()
}

// Coefficients returns a copy of the filter coefficients.
func (s *Stream[T]) Coefficients() Coefficients[T] {
	return s.c.clone()
}

// State is a snapshot of the delay lines of a Stream, newest sample first.
type State[T core.Scalar] struct {
	Inputs  []T // x[n-1], x[n-2], ..., x[n-BOrder]
	Outputs []T // y[n-1], y[n-2], ..., y[n-AOrder]
}

// State returns the current delay-line contents.
func (s *Stream[T]) State() State[T] {
	st := State[T]{
		Inputs:  make([]T, len(s.x.buf)),
		Outputs: make([]T, len(s.y.buf)),
	}
	for i := range st.Inputs {
		st.Inputs[i] = s.x.at(i + 1)
	}
	for i := range st.Outputs {
		st.Outputs[i] = s.y.at(i + 1)
	}
	return st
}

// SetState restores a snapshot taken with State. Missing values are taken
// as zero and extra values are ignored.
func (s *Stream[T]) SetState(st State[T]) {
	restore(&s.x, st.Inputs)
	restore(&s.y, st.Outputs)
}

func restore[T core.Scalar](w *window[T], newestFirst []T) {
	w.reset()
	for i := len(w.buf); i >= 1; i-- {
		var v T
		if i <= len(newestFirst) {
			v = newestFirst[i-1]
		}
		w.push(v)
	}
}
