package errors

import (
	goerrors "errors"
	"io"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := New("registry.Register", KindCapacity, io.EOF)
	want := "registry.Register [capacity]: EOF"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &Error{Op: "ember.BeginFrame", Kind: KindArgument}
	if bare.Error() != "ember.BeginFrame [argument]" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestUnwrap(t *testing.T) {
	err := New("config.LoadOptional", KindConfig, io.ErrUnexpectedEOF)
	if !goerrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("errors.Is did not find the wrapped error")
	}
}

func TestNewf(t *testing.T) {
	err := Newf("focus.Register", KindCapacity, "order full at %d", 64)
	if err.Err == nil || err.Err.Error() != "order full at 64" {
		t.Errorf("Newf underlying error = %v", err.Err)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindCapacity, "capacity"},
		{KindArgument, "argument"},
		{Kind(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestHandlerFunc(t *testing.T) {
	var got *Error
	h := HandlerFunc(func(err *Error) { got = err })
	want := Newf("x", KindUnknown, "boom")
	h.Handle(want)
	if got != want {
		t.Error("HandlerFunc did not forward the error")
	}
}
