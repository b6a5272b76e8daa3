package models

import (
	"errors"
	"fmt"
)

// ErrorType identifies the category of error that occurred.
type ErrorType string

const (
	// Namespace discovery and selection
	ErrNoNamespacesFound    ErrorType = "no_namespaces_found"
	ErrInvalidYearSelection ErrorType = "invalid_year_selection"

	// Command parsing
	ErrFormatError ErrorType = "format_error"

	// Resolution
	ErrImplementationNotFound ErrorType = "implementation_not_found"
	ErrNoImplementationsFound ErrorType = "no_implementations_found"

	// Execution
	ErrInvocationFailure ErrorType = "invocation_failure"

	// Benchmark subprocess
	ErrSubprocessLaunchFailure ErrorType = "subprocess_launch_failure"
	ErrSubprocessNonZeroExit   ErrorType = "subprocess_non_zero_exit"

	// Collaborators
	ErrInputUnavailable    ErrorType = "input_unavailable"
	ErrProjectRootNotFound ErrorType = "project_root_not_found"
)

// Error is a categorized failure. It is returned by resolution, parsing and
// subprocess operations and attached to InvocationResult for failed calls.
type Error struct {
	Type    ErrorType `json:"type" yaml:"type"`
	Message string    `json:"message" yaml:"message"`
	Err     error     `json:"-" yaml:"-"`
}

// Errorf creates an Error of the given type with a formatted message.
func Errorf(t ErrorType, format string, args ...any) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...)}
}

// WrapError creates an Error of the given type that wraps err.
func WrapError(t ErrorType, err error, format string, args ...any) *Error {
	return &Error{Type: t, Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same type, so that
// errors.Is(err, &Error{Type: ErrFormatError}) matches any format error.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	return t.Type == e.Type
}

// TypeOf returns the ErrorType of the first *Error in err's chain, or an
// empty ErrorType if there is none.
func TypeOf(err error) ErrorType {
	var e *Error
	if errors.As(err, &e) {
		return e.Type
	}
	return ""
}
