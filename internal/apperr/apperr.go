// Package apperr is the template's error-reporting convention: an error value
// that records the source file and line where it was raised, rendered with or
// without that location depending on how the binary was built.
//
// Two constructors exist. Errorf marks the error as disclosed-style, the kind
// you want while debugging. Baref marks it bare-style, suitable for end users.
// Both capture the raise site unconditionally; whether the location actually
// appears in the rendered text is decided solely by the disclose build tag,
// never per call. Build with -tags disclose to turn location rendering on.
package apperr

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// Error is an application-raised failure with a message and the source
// location of the raise site.
type Error struct {
	msg  string
	file string
	line int
	bare bool
}

// Errorf raises a disclosed-style error, capturing the caller's file and line.
func Errorf(format string, args ...any) *Error {
	return newError(false, format, args...)
}

// Baref raises a bare-style error intended for end users. The location is
// still captured; whether it is rendered depends on the disclose build tag.
func Baref(format string, args ...any) *Error {
	return newError(true, format, args...)
}

func newError(bare bool, format string, args ...any) *Error {
	e := &Error{
		msg:  fmt.Sprintf(format, args...),
		bare: bare,
	}
	// Skip newError and the exported constructor.
	if _, file, line, ok := runtime.Caller(2); ok {
		e.file = filepath.Base(file)
		e.line = line
	}
	return e
}

// Error renders the failure. Location is included iff the binary was built
// with the disclose tag; the per-call bare request never overrides it.
func (e *Error) Error() string {
	return e.render(disclose)
}

func (e *Error) render(disclose bool) string {
	if disclose && e.file != "" {
		return fmt.Sprintf("%s:%d: %s", e.file, e.line, e.msg)
	}
	return e.msg
}

// Message returns the message without any location prefix.
func (e *Error) Message() string { return e.msg }

// Location returns the captured raise site. ok is false when capture failed.
func (e *Error) Location() (file string, line int, ok bool) {
	return e.file, e.line, e.file != ""
}

// Bare reports whether the error was raised bare-style.
func (e *Error) Bare() bool { return e.bare }
