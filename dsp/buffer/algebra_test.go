package buffer

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-sigkit/internal/testutil"
)

type sample float32

func TestBinaryOps(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{10, 20, 30, 40}

	tests := []struct {
		name string
		op   func(dst, a, b []float64)
		want []float64
	}{
		{name: "add", op: Add[float64], want: []float64{11, 22, 33, 44}},
		{name: "subtract", op: Subtract[float64], want: []float64{-9, -18, -27, -36}},
		{name: "multiply", op: Multiply[float64], want: []float64{10, 40, 90, 160}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, len(a))
			tt.op(dst, a, b)
			testutil.RequireSliceEqual(t, dst, tt.want)
		})
	}
}

func TestBinaryOpsAliasing(t *testing.T) {
	t.Run("dst is first operand", func(t *testing.T) {
		a := []int{1, 2, 3}
		Subtract(a, a, []int{3, 2, 1})
		testutil.RequireSliceEqual(t, a, []int{-2, 0, 2})
	})

	t.Run("dst is second operand", func(t *testing.T) {
		b := []float64{1, 2, 3}
		Subtract(b, []float64{3, 2, 1}, b)
		testutil.RequireSliceEqual(t, b, []float64{2, 0, -2})
	})

	t.Run("all three identical", func(t *testing.T) {
		a := []float64{1, 2, 3}
		Multiply(a, a, a)
		testutil.RequireSliceEqual(t, a, []float64{1, 4, 9})
		Add(a, a, a)
		testutil.RequireSliceEqual(t, a, []float64{2, 8, 18})
	})
}

func TestBinaryOpsNamedType(t *testing.T) {
	dst := make([]sample, 3)
	Add(dst, []sample{0.5, 1, 1.5}, []sample{0.5, 0.5, 0.5})
	testutil.RequireSliceEqual(t, dst, []sample{1, 1.5, 2})
	Multiply(dst, dst, []sample{2, 2, 2})
	testutil.RequireSliceEqual(t, dst, []sample{2, 3, 4})
}

func TestBinaryOpsLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Add should panic on mismatched lengths")
		}
	}()
	Add(make([]int, 2), make([]int, 2), make([]int, 3))
}

func TestScale(t *testing.T) {
	f := []float64{1, -2, 0.5}
	Scale(f, 2)
	testutil.RequireSliceEqual(t, f, []float64{2, -4, 1})

	i := []int8{1, -2, 3}
	Scale(i, -3)
	testutil.RequireSliceEqual(t, i, []int8{-3, 6, -9})
}

func TestClip(t *testing.T) {
	buf := []float64{-2, -0.5, 0, 0.5, 2}
	Clip(buf, -1, 1)
	testutil.RequireSliceEqual(t, buf, []float64{-1, -0.5, 0, 0.5, 1})

	ints := []int{-5, 0, 5}
	Clip(ints, 2, 3)
	testutil.RequireSliceEqual(t, ints, []int{2, 2, 3})
}

func TestMaxAbs(t *testing.T) {
	if got := MaxAbs([]float64{0.5, -3, 2}); got != 3 {
		t.Fatalf("MaxAbs = %v, want 3", got)
	}
	if got := MaxAbs([]int32{-7, 6}); got != 7 {
		t.Fatalf("MaxAbs = %v, want 7", got)
	}
	if got := MaxAbs([]float32(nil)); got != 0 {
		t.Fatalf("MaxAbs(empty) = %v, want 0", got)
	}
}

func TestNormalize(t *testing.T) {
	buf := []float64{0.25, -0.5, 0.1}
	Normalize(buf, 1)
	testutil.RequireSliceNearlyEqual(t, buf, []float64{0.5, -1, 0.2}, 1e-15)

	ints := []int{2, -5, 1}
	Normalize(ints, 10)
	testutil.RequireSliceEqual(t, ints, []int{4, -10, 2})
}

func TestNormalizeAllZeroFloat(t *testing.T) {
	buf := []float64{0, 0}
	func() {
		defer func() { _ = recover() }()
		Normalize(buf, 1)
	}()
	for _, v := range buf {
		if !math.IsNaN(v) && v != 0 {
			t.Fatalf("unexpected value after degenerate normalize: %v", v)
		}
	}
}

func TestFill(t *testing.T) {
	buf := make([]int, 3)
	Fill(buf, 7)
	testutil.RequireSliceEqual(t, buf, []int{7, 7, 7})
	FillWithZeros(buf)
	testutil.RequireSliceEqual(t, buf, []int{0, 0, 0})
}

func TestCopy(t *testing.T) {
	dst := make([]float64, 4)
	Copy(dst, []float64{1, 2, 3})
	testutil.RequireSliceEqual(t, dst, []float64{1, 2, 3, 0})

	defer func() {
		if recover() == nil {
			t.Fatal("Copy should panic when dst is too short")
		}
	}()
	Copy(dst[:1], []float64{1, 2})
}

func TestReverse(t *testing.T) {
	for n := 0; n <= 9; n++ {
		buf := testutil.Ramp[int](n)
		Reverse(buf)
		for i, v := range buf {
			if v != n-1-i {
				t.Fatalf("n=%d: buf[%d] = %d, want %d", n, i, v, n-1-i)
			}
		}
		Reverse(buf)
		testutil.RequireSliceEqual(t, buf, testutil.Ramp[int](n))
	}
}
