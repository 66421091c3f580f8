// Package result provides a container holding either a success value or a failure value.
package result

import (
	"fmt"

	"github.com/distribution-auth/expect/internal/abort"
)

// Unit is an empty failure payload for results that carry no failure information.
type Unit struct{}

// String returns "()".
func (Unit) String() string {
	return "()"
}

// Result holds either a success value of type T or a failure value of type E.
//
// The zero value is a failure holding the zero value of E.
type Result[T any, E any] struct {
	value   T
	failure E
	ok      bool
}

// Ok returns a successful Result.
func Ok[T any, E any](v T) Result[T, E] {
	return Result[T, E]{
		value: v,
		ok:    true,
	}
}

// Err returns a failed Result.
func Err[T any, E any](e E) Result[T, E] {
	return Result[T, E]{
		failure: e,
	}
}

// From converts a (value, error) pair into a Result.
// A nil error means success.
//
//	res := result.From(os.ReadFile(path))
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}

	return Ok[T, error](v)
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result holds a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and whether the Result is successful.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// Failure returns the failure value and whether the Result failed.
func (r Result[T, E]) Failure() (E, bool) {
	return r.failure, !r.ok
}

// ExpectFmt returns the success value or calls fn if the Result failed.
// fn must not return.
//
// The failure value is never passed to fn.
// Callers who want it in the message have to format it themselves.
func (r Result[T, E]) ExpectFmt(fn func()) T {
	if r.ok {
		return r.value
	}

	return abort.Call[T](fn)
}

// String returns "Ok(<value>)" or "Err(<failure>)".
func (r Result[T, E]) String() string {
	return fmt.Sprint(r)
}

// Format implements fmt.Formatter.
// Verbs and flags are applied to the held value.
func (r Result[T, E]) Format(f fmt.State, verb rune) {
	format := fmt.FormatString(f, verb)

	if r.ok {
		fmt.Fprintf(f, "Ok("+format+")", r.value)

		return
	}

	fmt.Fprintf(f, "Err("+format+")", r.failure)
}
