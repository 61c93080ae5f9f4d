package errors

import (
	"fmt"
	"os"
)

// Handler receives errors the engine cannot return through a call path,
// such as capacity degradation inside a widget declaration.
type Handler interface {
	Handle(err *Error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(*Error)

// Handle calls f(err).
func (f HandlerFunc) Handle(err *Error) {
	f(err)
}

// LogHandler is a Handler that logs errors to stderr.
type LogHandler struct {
	// Verbose enables the underlying error chain in the output.
	Verbose bool
}

// Handle logs an Error to stderr.
func (h *LogHandler) Handle(err *Error) {
	if err == nil {
		return
	}
	if h.Verbose && err.Err != nil {
		fmt.Fprintf(os.Stderr, "[ember] %s [%s]: %v\n", err.Op, err.Kind, err.Err)
		return
	}
	fmt.Fprintf(os.Stderr, "[ember] %s\n", err.Error())
}

// NopHandler discards every error. Useful in tests that assert degradation
// through the registry flags instead.
type NopHandler struct{}

// Handle discards the error.
func (NopHandler) Handle(*Error) {}
