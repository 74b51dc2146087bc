// Package serrors provides semantic errors: a sentinel kind plus an optional
// message and wrapped cause. Callers classify failures with errors.Is against
// the kind, while the message stays human-readable.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind. It allows distinguishing semantic kinds from ordinary errors.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). The name doubles as
// the machine-readable error code exposed by the API.
func NewKind(name string) Kind { return kind{s: name} }

// Transport-level kinds shared by every surface. Domain packages declare
// their own kinds next to the code that returns them.
var (
	// ErrBadRequest indicates the caller sent invalid input.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrNotFound indicates the requested route or resource does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrMethodNotAllowed indicates the route exists but not for this method.
	ErrMethodNotAllowed = NewKind("METHOD_NOT_ALLOWED")
	// ErrInternal indicates an unexpected failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a kind, an optional wrapped error and an optional message.
//
// Matching semantics:
//   - errors.Is(err, target) matches the kind sentinel or anything in the
//     wrapped chain.
//   - errors.As(err, target) succeeds for the kind or the wrapped chain.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg: "<msg>"
//   - only err: "<err>"
//   - neither: the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped error.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As enables type assertions against either the kind or the wrapped chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the most specific kind found in err's chain: the kind of the
// innermost *Error, or err itself when it is a bare kind sentinel. It returns
// nil when the chain carries no kind at all.
func KindOf(err error) Kind {
	var found Kind
	for cur := err; cur != nil; {
		var se *Error
		if !errors.As(cur, &se) {
			break
		}
		if se.kind != nil {
			found = se.kind
		}
		cur = se.err
	}
	if found != nil {
		return found
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

// MessageOf returns the message of the outermost *Error in err's chain that
// carries one, falling back to err.Error().
func MessageOf(err error) string {
	for cur := err; cur != nil; {
		var se *Error
		if !errors.As(cur, &se) {
			break
		}
		if se.msg != "" {
			return se.msg
		}
		cur = se.err
	}

	return err.Error()
}
