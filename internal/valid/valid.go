// Package valid implements an error-accumulating validation result.
//
// A Valid is either a success carrying a value or a failure carrying one or
// more error messages. Unlike error returns that stop at the first problem,
// combinators in this package run every check and concatenate the failures,
// so a caller sees all problems from one pass.
package valid

import "fmt"

// Valid holds either a value of type T or a non-empty list of error messages.
type Valid[T any] struct {
	value T
	errs  []string
}

// Succeed constructs a successful Valid holding value.
func Succeed[T any](value T) Valid[T] {
	return Valid[T]{value: value}
}

// Fail constructs a failed Valid holding exactly one error message.
func Fail[T any](msg string) Valid[T] {
	return Valid[T]{errs: []string{msg}}
}

// Failf constructs a failed Valid with a formatted error message.
func Failf[T any](format string, args ...any) Valid[T] {
	return Fail[T](fmt.Sprintf(format, args...))
}

// Succeeded reports whether v holds a value rather than errors.
func (v Valid[T]) Succeeded() bool {
	return len(v.errs) == 0
}

// Errors returns the accumulated error messages, nil on success.
func (v Valid[T]) Errors() []string {
	return v.errs
}

// ToResult converts v into a conventional (value, error) pair. On failure the
// error is an *Error aggregating every message in order.
func (v Valid[T]) ToResult() (T, error) {
	if v.Succeeded() {
		return v.value, nil
	}
	var zero T
	return zero, &Error{Messages: v.errs}
}

// Map applies fn to the held value of a success and re-wraps the result.
// On failure the error list is carried over untouched.
func Map[T, U any](v Valid[T], fn func(T) U) Valid[U] {
	if !v.Succeeded() {
		return Valid[U]{errs: v.errs}
	}
	return Succeed(fn(v.value))
}

// AndThen chains a validation step: fn runs only on success and may itself
// fail. On failure the error list is carried over untouched.
func AndThen[T, U any](v Valid[T], fn func(T) Valid[U]) Valid[U] {
	if !v.Succeeded() {
		return Valid[U]{errs: v.errs}
	}
	return fn(v.value)
}

// FromIter invokes fn for every item, never short-circuiting. If every
// invocation succeeds it returns the collected results in input order.
// If any invocation fails it returns a failure whose messages are the
// concatenation, in input order, of every failed invocation's messages.
func FromIter[A, B any](items []A, fn func(A) Valid[B]) Valid[[]B] {
	out := make([]B, 0, len(items))
	var errs []string
	for _, item := range items {
		r := fn(item)
		if r.Succeeded() {
			out = append(out, r.value)
		} else {
			errs = append(errs, r.errs...)
		}
	}
	if len(errs) > 0 {
		return Valid[[]B]{errs: errs}
	}
	return Succeed(out)
}

// Combine merges two outcomes, keeping b's value. If either side failed the
// result is a failure holding a's errors followed by b's.
func Combine[T any](a Valid[T], b Valid[T]) Valid[T] {
	if a.Succeeded() && b.Succeeded() {
		return b
	}
	errs := make([]string, 0, len(a.errs)+len(b.errs))
	errs = append(errs, a.errs...)
	errs = append(errs, b.errs...)
	return Valid[T]{errs: errs}
}
