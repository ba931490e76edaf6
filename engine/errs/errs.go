// Package errs defines the error kinds surfaced by the engine.
//
// Every error produced by an engine subsystem wraps exactly one kind sentinel,
// so callers can branch with errors.Is:
//
//	if errors.Is(err, errs.ErrState) { ... }
package errs

import (
	"errors"
	"fmt"
)

// Kind sentinels.
var (
	ErrInit              = errors.New("initialization failure")
	ErrIO                = errors.New("i/o failure")
	ErrState             = errors.New("state contract violation")
	ErrResourceExhausted = errors.New("resource exhausted")
	ErrRuntime           = errors.New("runtime failure")
)

// Error annotates a cause with its kind and the operation that failed.
type Error struct {
	Kind error  // one of the sentinels above
	Op   string // e.g. "renderer2d.PopTransform"
	Err  error  // optional underlying cause
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	case e.Op == "":
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New builds an *Error of the given kind.
func New(kind error, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf builds an *Error of the given kind with a formatted cause.
func Errorf(kind error, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// State is shorthand for a state-contract violation.
func State(op, format string, args ...any) error {
	return Errorf(ErrState, op, format, args...)
}

// KindOf reports which sentinel err wraps, or nil if none.
func KindOf(err error) error {
	for _, k := range []error{ErrInit, ErrIO, ErrState, ErrResourceExhausted, ErrRuntime} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
