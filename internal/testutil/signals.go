package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-sigkit/dsp/core"
)

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicInts generates integers in [-limit, limit] with a fixed seed.
func DeterministicInts[T core.Scalar](seed int64, limit, length int) []T {
	out := make([]T, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = T(rng.Intn(2*limit+1) - limit)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse[T core.Scalar](length, pos int) []T {
	out := make([]T, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ramp returns 0, 1, ..., length-1.
func Ramp[T core.Scalar](length int) []T {
	out := make([]T, length)
	for i := range out {
		out[i] = T(i)
	}
	return out
}
