// Package conv provides direct time-domain linear convolution for any
// core.Scalar element type.
//
// Direct allocates the full-length result; DirectTo writes into a caller
// buffer; InPlace convolves a signal stored at the start of a buffer that
// has room for the convolution tail:
//
//	y, err := conv.Direct(signal, kernel)   // len(signal)+len(kernel)-1
//	conv.DirectTo(dst, signal, kernel)      // dst must not alias the inputs
//	conv.InPlace(buf, n, kernel)            // buf[:n] holds the signal
//
// All routines are O(N*M). []float64 inputs with kernels of four or more
// taps accumulate through algo-vecmath block kernels.
package conv
