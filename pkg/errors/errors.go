// Package errors provides structured error handling for the Ember engine.
//
// The interaction core itself never fails: immediate-mode widgets have no
// error channel, so conditions like a full registry degrade locally and are
// reported out-of-band through a Handler instead of being returned. Real
// errors (config parsing, manifest validation) are returned as *Error values
// carrying the failing operation and a category kind.
package errors

import "fmt"

// Kind identifies the category of an error.
type Kind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown Kind = iota
	// KindConfig indicates a configuration or manifest error.
	KindConfig
	// KindCapacity indicates a fixed-capacity table overflow. Never fatal:
	// the engine drops the registration and continues degraded.
	KindCapacity
	// KindArgument indicates an invalid argument short-circuited to a safe
	// no-op.
	KindArgument
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindCapacity:
		return "capacity"
	case KindArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// Error is a structured engine error.
type Error struct {
	// Op is the operation that failed (e.g., "registry.Register").
	Op string
	// Kind is the error category.
	Kind Kind
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s [%s]", e.Op, e.Kind)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a structured error.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Newf creates a structured error from a format string.
func Newf(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Err: fmt.Errorf(format, args...)}
}
