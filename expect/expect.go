// Package expect unwraps optional values and results with a formatted panic message.
//
// It is the equivalent of the "must" helpers found in most codebases,
// except that the caller decides what the panic message looks like:
//
//	port := expect.Fmt(cfg.Port, "port is required in %s", path)
//
// The failure value of a result is never added to the message automatically.
// Pass it (or the container itself) as a format argument if you need it:
//
//	res := result.From(os.ReadFile(path))
//	data := expect.Fmt(res, "reading %s: %v", path, res)
package expect

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/distribution-auth/expect/internal/abort"
	"github.com/distribution-auth/expect/pkg/option"
)

// Expecter is implemented by containers that either hold a value or not.
//
// ExpectFmt returns the held value or calls abort.
// Implementations must not call abort when they hold a value.
// abort never returns: it panics (or otherwise terminates the goroutine).
//
// Both option.Value and result.Result implement Expecter.
// Custom containers can implement it to be usable with Fmt.
type Expecter[T any] interface {
	ExpectFmt(abort func()) T
}

// ErrAbortReturned is the panic value raised when an abort function passed to ExpectFmt returns.
var ErrAbortReturned = abort.ErrReturned

// Fmt returns the value held by c.
// Otherwise it panics with a message formatted according to format and args.
//
// Formatting only happens when c is empty, but args are evaluated in any case.
func Fmt[T any](c Expecter[T], format string, args ...any) T {
	return c.ExpectFmt(Panicf(format, args...))
}

// FmtLog is like Fmt, but the message is also logged by logger before panicking.
func FmtLog[T any](logger *zap.Logger, c Expecter[T], format string, args ...any) T {
	return c.ExpectFmt(LogPanicf(logger, format, args...))
}

// Panicf returns an abort function that panics with the formatted message.
// The panic value is a string.
func Panicf(format string, args ...any) func() {
	return func() {
		panic(fmt.Sprintf(format, args...))
	}
}

// LogPanicf returns an abort function that logs the formatted message at panic level, then panics with it.
// It falls back to Panicf if logger is nil.
func LogPanicf(logger *zap.Logger, format string, args ...any) func() {
	if logger == nil {
		return Panicf(format, args...)
	}

	return func() {
		logger.Panic(fmt.Sprintf(format, args...))
	}
}

// FromOption adapts any option.Option implementation to Expecter.
func FromOption[T any](o option.Option[T]) Expecter[T] {
	return optionExpecter[T]{o}
}

type optionExpecter[T any] struct {
	option option.Option[T]
}

func (e optionExpecter[T]) ExpectFmt(fn func()) T {
	if e.option.HasValue() {
		return e.option.Value()
	}

	return abort.Call[T](fn)
}
