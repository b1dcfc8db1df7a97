// Package buffer provides elementwise buffer algebra over caller-owned
// slices, plus a reusable generic Buffer type and the pool that backs all
// call-scoped scratch memory in algo-sigkit.
//
// # Aliasing
//
// [Add], [Subtract] and [Multiply] compute each output element from the
// inputs at the same index only, so dst may be the same slice as either
// input. [Copy] walks forward and gives no guarantee for partially
// overlapping slices.
//
// # Layouts
//
// [Interleave] and [Deinterleave] reshape a buffer in place between
// frame-major ([frame][channel]) and channel-major ([channel][frame])
// order; they are exact inverses for the same frame and channel counts.
//
// # Scratch
//
// Operations that need temporary storage borrow it through [GetScratch]
// and release it with a deferred [PutScratch] before returning, so no
// memory outlives the call.
package buffer
