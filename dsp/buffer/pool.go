package buffer

import (
	"reflect"
	"sync"

	"github.com/cwbudde/algo-sigkit/dsp/core"
)

// Pool provides sync.Pool-based Buffer reuse for call-scoped scratch memory.
type Pool[T core.Scalar] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T core.Scalar]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a Buffer with the requested length. The buffer is zeroed.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// scratchPools holds one Pool per element type.
var scratchPools sync.Map // reflect.Type -> *Pool[T]

func scratchPool[T core.Scalar]() *Pool[T] {
	key := reflect.TypeFor[T]()
	if p, ok := scratchPools.Load(key); ok {
		return p.(*Pool[T])
	}
	p, _ := scratchPools.LoadOrStore(key, NewPool[T]())
	return p.(*Pool[T])
}

// GetScratch borrows a zeroed scratch buffer of length n from the shared
// per-type pool. Pair every call with a deferred PutScratch so the memory
// is released on every exit path:
//
//	tmp := buffer.GetScratch[float64](n)
//	defer buffer.PutScratch(tmp)
func GetScratch[T core.Scalar](n int) *Buffer[T] {
	return scratchPool[T]().Get(n)
}

// PutScratch hands a buffer obtained from GetScratch back to its pool.
func PutScratch[T core.Scalar](b *Buffer[T]) {
	scratchPool[T]().Put(b)
}
