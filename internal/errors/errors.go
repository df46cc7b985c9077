// Package errors defines the error taxonomy shared by all pipeline stages.
//
// Every failure is one of four kinds: bad input shape (Validation), a missing
// directory/remote/pattern (NotFound), a target collision (AlreadyExists), or
// a non-zero exit from a delegated process (ExternalTool). Callers branch on
// the kind, never on message text.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error.
type Kind string

const (
	Validation    Kind = "validation"
	NotFound      Kind = "not_found"
	AlreadyExists Kind = "already_exists"
	ExternalTool  Kind = "external_tool"
)

// Error is the standard error type for ggcreate failures.
type Error struct {
	Kind   Kind
	Msg    string
	Cause  error
	Output string // captured stdout/stderr of a failed external tool
}

// Error returns the message, with captured tool output appended when present.
func (e *Error) Error() string {
	if e.Output == "" {
		return e.Msg
	}
	return e.Msg + "\n" + strings.TrimRight(e.Output, "\n")
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an error with the given kind and message.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf creates an error with the given kind and a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an error with the given kind wrapping an underlying cause.
func Wrap(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Cause: err}
}

// Tool creates an ExternalTool error carrying the captured output of the
// failed command.
func Tool(msg string, output string) error {
	return &Error{Kind: ExternalTool, Msg: msg, Output: output}
}

// KindOf extracts the kind from an error, or "" if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
