package logger

import (
	"errors"
	"runtime"
)

// stackError records the call stack at the point an error was wrapped.
type stackError struct {
	err error
	pcs []uintptr
}

// WithStack annotates err with the stack of its caller. Exception prints
// that stack after the error message. A nil err returns nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	return &stackError{err: err, pcs: pcs[:n]}
}

func (e *stackError) Error() string { return e.err.Error() }
func (e *stackError) Unwrap() error { return e.err }

// StackTrace renders the recorded frames one per line.
func (e *stackError) StackTrace() string {
	return formatFrames(e.pcs, "\n")
}

// StackTrace returns the stack recorded by WithStack anywhere in err's chain,
// or "" if none was recorded.
func StackTrace(err error) string {
	var se *stackError
	if errors.As(err, &se) {
		return se.StackTrace()
	}
	return ""
}
