package direct

import "github.com/cwbudde/algo-sigkit/dsp/core"

// window is the delay line for one side of the recurrence. It holds the
// order most recent samples, newest first: position 1 is the previous
// sample, position order the oldest one.
//
// push shifts every position back by one and drops the oldest sample. The
// shift is a head move on a ring, so it never touches the other slots.
type window[T core.Scalar] struct {
	buf  []T
	head int
}

func newWindow[T core.Scalar](order int) window[T] {
	return window[T]{buf: make([]T, max(order, 0))}
}

// at returns the sample at delay i, 1 <= i <= order.
func (w *window[T]) at(i int) T {
	j := w.head + i - 1
	if j >= len(w.buf) {
		j -= len(w.buf)
	}
	return w.buf[j]
}

// push inserts v at delay 1.
func (w *window[T]) push(v T) {
	if len(w.buf) == 0 {
		return
	}
	w.head--
	if w.head < 0 {
		w.head = len(w.buf) - 1
	}
	w.buf[w.head] = v
}

// mulAdd returns acc + sum_{i>=1} c[i]*at(i). c must hold order+1 values.
func (w *window[T]) mulAdd(acc T, c []T) T {
	j := w.head
	for i := 1; i < len(c); i++ {
		acc += c[i] * w.buf[j]
		j++
		if j == len(w.buf) {
			j = 0
		}
	}
	return acc
}

// mulSub returns acc - sum_{i>=1} c[i]*at(i). c must hold order+1 values.
func (w *window[T]) mulSub(acc T, c []T) T {
	j := w.head
	for i := 1; i < len(c); i++ {
		acc -= c[i] * w.buf[j]
		j++
		if j == len(w.buf) {
			j = 0
		}
	}
	return acc
}

func (w *window[T]) reset() {
	core.Zero(w.buf)
	w.head = 0
}
