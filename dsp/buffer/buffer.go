package buffer

import "github.com/cwbudde/algo-sigkit/dsp/core"

// Buffer is a reusable scratch slice handed out by Pool. The zero value is
// an empty buffer ready for Resize.
type Buffer[T core.Scalar] struct {
	samples []T
}

// Samples returns the underlying slice.
func (b *Buffer[T]) Samples() []T {
	return b.samples
}

// Resize sets the length to n, reusing existing capacity when possible.
// Elements beyond the previous length are zeroed, even when the backing
// array held stale values from an earlier, longer use.
func (b *Buffer[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n > cap(b.samples) {
		s := make([]T, n)
		copy(s, b.samples)
		b.samples = s
		return
	}
	b.samples = b.samples[:n]
	if n > oldLen {
		core.Zero(b.samples[oldLen:])
	}
}

// Zero sets all samples to the additive identity.
func (b *Buffer[T]) Zero() {
	core.Zero(b.samples)
}
