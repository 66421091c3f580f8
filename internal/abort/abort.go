// Package abort enforces the "never returns" contract of abort functions.
package abort

import "errors"

// ErrReturned is the panic value raised when an abort function returns control to its caller.
var ErrReturned = errors.New("expect: abort function returned")

// Call invokes fn, which must not return.
// If it does, Call panics with ErrReturned.
//
// The type parameter only exists so that callers can write `return abort.Call[T](fn)`.
func Call[T any](fn func()) T {
	fn()

	panic(ErrReturned)
}
