package fn

import "fmt"

// Result carries either a value or the error that prevented producing one.
// The zero Result is an Ok holding the zero value, so always build Results
// through Ok, Err, Errf or FromPair.
type Result[T any] struct {
	val T
	err error
}

// Ok wraps a value in a successful Result.
func Ok[T any](v T) Result[T] { return Result[T]{val: v} }

// Err wraps an error in a failed Result.
func Err[T any](err error) Result[T] { return Result[T]{err: err} }

// Errf is Err with fmt.Errorf formatting.
func Errf[T any](format string, args ...any) Result[T] {
	return Result[T]{err: fmt.Errorf(format, args...)}
}

// FromPair lifts a conventional (value, error) return into a Result.
func FromPair[T any](v T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(v)
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether the Result holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Unwrap lowers the Result back to a (value, error) pair.
func (r Result[T]) Unwrap() (T, error) { return r.val, r.err }

// Must returns the value, panicking with the error if there is one.
// Reserve it for tests and program setup.
func (r Result[T]) Must() T {
	if r.err != nil {
		panic(r.err)
	}
	return r.val
}

// UnwrapOr returns the value, or fallback when the Result failed.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.err != nil {
		return fallback
	}
	return r.val
}

// Map applies f to the value of an Ok Result; errors pass through untouched.
func (r Result[T]) Map(f func(T) T) Result[T] {
	if r.err != nil {
		return r
	}
	return Ok(f(r.val))
}

// AndThen feeds the value into f, which may itself fail. Errors pass through.
func (r Result[T]) AndThen(f func(T) Result[T]) Result[T] {
	if r.err != nil {
		return r
	}
	return f(r.val)
}

// MapResult applies f across the type change T -> U.
// It lives as a free function because Go methods cannot add type parameters.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Err[U](r.err)
	}
	return Ok(f(r.val))
}

// Collect flattens a slice of Results into one. The first error wins;
// otherwise the values come back in their original order.
func Collect[T any](results []Result[T]) Result[[]T] {
	vals := make([]T, len(results))
	for i, r := range results {
		if r.err != nil {
			return Err[[]T](r.err)
		}
		vals[i] = r.val
	}
	return Ok(vals)
}
