//go:build !dspdebug

package precond

// Enabled reports whether precondition assertions are compiled in.
const Enabled = false
