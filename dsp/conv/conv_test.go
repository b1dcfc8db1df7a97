package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-sigkit/internal/testutil"
)

// naive is the textbook double loop over output indices.
func naive(x, h []float64) []float64 {
	y := make([]float64, len(x)+len(h)-1)
	for n := range y {
		for k := range h {
			if i := n - k; i >= 0 && i < len(x) {
				y[n] += h[k] * x[i]
			}
		}
	}
	return y
}

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		h        []float64
		expected []float64
	}{
		{name: "simple 3x3", x: []float64{1, 2, 3}, h: []float64{1, 1, 1}, expected: []float64{1, 3, 6, 5, 3}},
		{name: "identity", x: []float64{1, 2, 3, 4, 5}, h: []float64{1}, expected: []float64{1, 2, 3, 4, 5}},
		{name: "delayed impulse", x: []float64{1, 2, 3, 4, 5}, h: []float64{0, 0, 1}, expected: []float64{0, 0, 1, 2, 3, 4, 5}},
		{name: "symmetric", x: []float64{1, 2, 1}, h: []float64{1, 2, 1}, expected: []float64{1, 4, 6, 4, 1}},
		{name: "kernel longer than signal", x: []float64{2}, h: []float64{1, -1, 0.5, 0.25}, expected: []float64{2, -2, 1, 0.5}},
		{name: "block path", x: []float64{1, 0, -1}, h: []float64{1, 2, 3, 4, 5}, expected: []float64{1, 2, 2, 2, 2, -4, -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.x, tt.h)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	if _, err := Direct([]float64{}, []float64{1, 2}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Direct([]int{1, 2}, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestDirectMatchesNaive(t *testing.T) {
	for _, m := range []int{1, 2, 3, 4, 7, 33} {
		x := testutil.DeterministicNoise(int64(m), 1, 100)
		h := testutil.DeterministicNoise(int64(m+100), 1, m)
		got, err := Direct(x, h)
		if err != nil {
			t.Fatal(err)
		}
		testutil.RequireSliceNearlyEqual(t, got, naive(x, h), 1e-12)
	}
}

func TestDirectGenericTypes(t *testing.T) {
	ints, _ := Direct([]int{1, 2, 3}, []int{1, 1, 1, 1})
	testutil.RequireSliceEqual(t, ints, []int{1, 3, 6, 6, 5, 3})

	f32, _ := Direct([]float32{0.5, 1}, []float32{2, 4, 6, 8})
	testutil.RequireSliceEqual(t, f32, []float32{1, 4, 7, 10, 8})
}

func TestDirectToLongerOutput(t *testing.T) {
	y := []float64{9, 9, 9, 9, 9, 9, 9}
	DirectTo(y, []float64{1, 2}, []float64{1, 1})
	testutil.RequireSliceEqual(t, y, []float64{1, 3, 2, 0, 0, 0, 0})
}

func TestDirectToShortOutputPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("DirectTo should panic when the output is too short")
		}
	}()
	DirectTo(make([]float64, 3), []float64{1, 2, 3}, []float64{1, 1})
}

func TestInPlace(t *testing.T) {
	tests := []struct {
		name string
		x    []float64
		h    []float64
	}{
		{name: "short kernel", x: []float64{1, 2, 3, 4}, h: []float64{0.5, 0.5}},
		{name: "block kernel", x: testutil.DeterministicNoise(1, 1, 40), h: testutil.DeterministicNoise(2, 1, 9)},
		{name: "identity", x: []float64{3, 1, 4, 1, 5}, h: []float64{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := naive(tt.x, tt.h)
			buf := make([]float64, len(want)+3)
			copy(buf, tt.x)
			buf[len(buf)-1] = 42

			InPlace(buf, len(tt.x), tt.h)
			testutil.RequireSliceNearlyEqual(t, buf[:len(want)], want, 1e-12)
			if buf[len(buf)-1] != 42 {
				t.Fatal("InPlace wrote past xLen+len(h)-1")
			}
		})
	}
}

func TestInPlaceKernelInsideBuffer(t *testing.T) {
	buf := []int{1, 2, 3, 0, 0, 1, 1}
	InPlace(buf, 3, buf[5:7])
	testutil.RequireSliceEqual(t, buf[:4], []int{1, 3, 5, 3})
}

func TestInPlaceNoop(t *testing.T) {
	buf := []int{1, 2, 3}
	InPlace(buf, 0, []int{5})
	InPlace(buf, 3, nil)
	testutil.RequireSliceEqual(t, buf, []int{1, 2, 3})
}
