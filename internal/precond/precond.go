// Package precond asserts caller obligations that the numeric packages do
// not check on their hot paths: zero divisors, forbidden aliasing,
// power-of-two lengths and empty reductions.
//
// Assertions compile to nothing unless the module is built with the
// dspdebug tag:
//
//	go test -tags dspdebug ./...
package precond

import (
	"fmt"
	"unsafe"
)

// Assert panics with a formatted message when checks are enabled and cond
// is false. The format arguments are only evaluated by the caller, so keep
// them cheap.
func Assert(cond bool, format string, args ...any) {
	if !Enabled || cond {
		return
	}
	panic(fmt.Sprintf(format, args...))
}

// Overlaps reports whether the backing arrays of a and b share at least
// one element.
func Overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return false
	}
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
