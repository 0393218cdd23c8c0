package binparse

import (
	"errors"
	"runtime"
)

// Error handling mirrors the teacher's split between io-layer failures and
// library-misuse failures: errors.Is/errors.As against the sentinels below
// tell a caller whether a decode failed because an assertion didn't hold,
// because an option couldn't be resolved, or because the descriptor itself
// was built wrong. EOF is deliberately not among them — it is signalled by
// Source.Read's ok=false return, not by an error value.
var (
	// ErrAssert is wrapped by the error returned when a field's assert
	// option rejects a decoded value.
	ErrAssert = errors.New("assertion failed")

	// ErrOptionResolution is wrapped when a string-named option (most
	// commonly Length) cannot be resolved against the object built so far.
	ErrOptionResolution = errors.New("option could not be resolved")

	// ErrBuild is wrapped by errors raised while composing a descriptor,
	// before any decode is attempted.
	ErrBuild = errors.New("invalid parser declaration")
)

// ParseError wraps a decode-time or build-time failure with the name of the
// field that raised it and the calling function, the same two pieces of
// context the teacher's encio.Error carries.
type ParseError struct {
	Err    error
	Field  string
	Caller string
}

func (e *ParseError) Error() string {
	msg := e.Caller + ": "
	if e.Field != "" {
		msg += "field " + e.Field + ": "
	}
	return msg + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(err error, field string) error {
	return &ParseError{
		Err:    err,
		Field:  field,
		Caller: getCaller(1),
	}
}

// AssertError reports that a field's assert option rejected a decoded
// value.
func AssertError(field string, got interface{}) error {
	return &ParseError{
		Err:    &assertFailure{got: got},
		Field:  field,
		Caller: getCaller(1),
	}
}

type assertFailure struct {
	got interface{}
}

func (a *assertFailure) Error() string {
	return ErrAssert.Error()
}

func (a *assertFailure) Unwrap() error {
	return ErrAssert
}

// OptionResolutionError reports that a string- or function-valued option
// (typically Length) could not be resolved against the object decoded so
// far.
func OptionResolutionError(field string, option string) error {
	return &ParseError{
		Err:    &optionFailure{option: option},
		Field:  field,
		Caller: getCaller(1),
	}
}

type optionFailure struct {
	option string
}

func (o *optionFailure) Error() string {
	return ErrOptionResolution.Error() + ": " + o.option
}

func (o *optionFailure) Unwrap() error {
	return ErrOptionResolution
}

// BuildError reports an invalid combination of options discovered while
// composing a descriptor.
func BuildError(field string, reason string) error {
	return &ParseError{
		Err:    &buildFailure{reason: reason},
		Field:  field,
		Caller: getCaller(1),
	}
}

type buildFailure struct {
	reason string
}

func (b *buildFailure) Error() string {
	return ErrBuild.Error() + ": " + b.reason
}

func (b *buildFailure) Unwrap() error {
	return ErrBuild
}

// getCaller returns the name of the function skip frames above the caller
// of getCaller itself.
func getCaller(skip int) string {
	pcs := make([]uintptr, 1)
	n := runtime.Callers(2+skip, pcs)
	if n != 1 {
		return "unknown"
	}
	frames := runtime.CallersFrames(pcs)
	frame, _ := frames.Next()
	return frame.Function
}
