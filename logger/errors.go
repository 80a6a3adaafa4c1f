package logger

import "fmt"

// ErrorCode represents a category of error returned by the logger.
type ErrorCode string

const (
	// ErrCodeSink indicates the log file could not be opened or initialized.
	ErrCodeSink ErrorCode = "SINK_ERROR"

	// ErrCodeValidation indicates an invalid argument, such as an empty identifier.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"

	// ErrCodeLaunch indicates the host has no way to open the log file.
	ErrCodeLaunch ErrorCode = "LAUNCH_ERROR"
)

// Error is a logger error with a code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError creates an error with the given code and message.
func NewError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

// WrapError creates an error with the given code wrapping cause.
func WrapError(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}
