// Package direct evaluates linear filters given as direct-form difference
// equations:
//
//	y[n] = b[0]*x[n] + b[1]*x[n-1] + ... + b[M]*x[n-M]
//	                 - a[1]*y[n-1] - ... - a[N]*y[n-N]
//
// The coefficient sets come from a separate design stage; a[0] is taken as
// 1 and never read.
//
// [Filter], [ImpulseResponse] and [BiDirectional] are stateless: every call
// starts from a zero state and keeps nothing afterwards. [Stream] carries the
// state across calls for block-wise processing of a longer signal.
//
// # Zero-phase filtering
//
// [BiDirectional] runs the filter forward, lets it ring out into a scratch
// tail, then runs it backward over the tail and the output. Magnitude
// responses multiply and the phase responses cancel. The tail length
// ([WithRingOut], 10000 samples by default) must cover the decay time of the
// filter; a tail that is too short leaves a transient at the end of the
// buffer.
package direct
