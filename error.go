package bole

// Sentinel errors for the bole module and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrBadLevel is returned when a level name cannot be parsed.
//
// The error is wrapped with the offending input so callers can report
// exactly what was rejected.
var ErrBadLevel = MakeErrorf("unrecognized level name")

// ErrStreamClosed is returned when writing to a log stream that has
// already been finalized with [Stream.Close].
var ErrStreamClosed = MakeErrorf("log stream already finalized")

// ErrSinkClosed is returned when closing a sink a second time.
//
// Logging to a closed sink is not an error; entries are silently dropped.
var ErrSinkClosed = MakeErrorf("sink already closed")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(e, err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(e, fmt.Errorf(format, args...))
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// Is reports whether the receiver's chain contains every error in
// target's chain. Sentinels constructed with [MakeErrorf] therefore
// still satisfy errors.Is after being extended with [Error.Wrap] or
// [Error.Wrapf].
func (e Error) Is(target error) bool {
	chain, ok := target.(Error)
	if !ok || len(chain) == 0 {
		return false
	}

	for _, err := range chain {
		if !slices.Contains(e, err) {
			return false
		}
	}

	return true
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
