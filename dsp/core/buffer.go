package core

// Zero sets all values in buf to the additive identity.
func Zero[T Scalar](buf []T) {
	for i := range buf {
		buf[i] = 0
	}
}
