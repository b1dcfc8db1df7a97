package direct

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-sigkit/dsp/core"
)

// Response computes the complex frequency response H(e^{jw}) of c at the
// given frequency (Hz) and sample rate (Hz):
//
//	H = sum_k b[k] e^{-jwk} / (1 + sum_{k>=1} a[k] e^{-jwk})
func Response[T core.Scalar](c Coefficients[T], freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate

	var num complex128
	for k, b := range c.B {
		num += complex(float64(b), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	den := complex(1, 0)
	for k := 1; k < len(c.A); k++ {
		den += complex(float64(c.A[k]), 0) * cmplx.Exp(complex(0, -w*float64(k)))
	}

	return num / den
}

// MagnitudeDB returns the magnitude response of c in dB at the given
// frequency.
func MagnitudeDB[T core.Scalar](c Coefficients[T], freqHz, sampleRate float64) float64 {
	return core.LinearToDB(cmplx.Abs(Response(c, freqHz, sampleRate)))
}
