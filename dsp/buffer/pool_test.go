package buffer

import (
	"sync"
	"testing"
)

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool[float64]()

	b := p.Get(8)
	if n := len(b.Samples()); n != 8 {
		t.Fatalf("len = %d, want 8", n)
	}

	for i, v := range b.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}

	p.Put(b)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool[int32]()

	b := p.Get(4)
	b.Samples()[0] = 42
	b.Samples()[1] = 43
	p.Put(b)

	b2 := p.Get(4)
	for i, v := range b2.Samples() {
		if v != 0 {
			t.Fatalf("reused Samples()[%d] = %v, want 0", i, v)
		}
	}

	p.Put(b2)
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool[float32]()
	p.Put(nil) // must not panic
}

func TestScratchPoolPerType(t *testing.T) {
	if scratchPool[float64]() != scratchPool[float64]() {
		t.Fatal("scratch pool for float64 is not stable")
	}

	f := GetScratch[float32](3)
	i := GetScratch[int](5)
	defer PutScratch(f)
	defer PutScratch(i)

	if len(f.Samples()) != 3 || len(i.Samples()) != 5 {
		t.Fatalf("scratch lengths = %d, %d; want 3, 5", len(f.Samples()), len(i.Samples()))
	}
}

func TestScratchConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for n := 1; n < 64; n++ {
				buf := make([]float64, n)
				for i := range buf {
					buf[i] = float64(seed*1000 + i)
				}
				want := append([]float64(nil), buf...)
				CircularShift(buf, seed+1)
				CircularShift(buf, -(seed + 1))
				for i := range buf {
					if buf[i] != want[i] {
						t.Errorf("goroutine %d n=%d: index %d = %v, want %v", seed, n, i, buf[i], want[i])
						return
					}
				}
			}
		}(g)
	}
	wg.Wait()
}
