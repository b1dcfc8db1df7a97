// Package core holds the scalar capability contract shared by every
// algorithm in algo-sigkit, plus a few small scalar helpers.
//
// All generic routines are parameterized over [Scalar]. A type that lacks
// one of the required operators is rejected at compile time; there is no
// runtime type inspection on the numeric paths.
package core
