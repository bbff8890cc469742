package declopt

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownOption  = errors.New("unknown option")
	ErrRequired       = errors.New("option is required")
	ErrMissingValue   = errors.New("option needs a value")
	ErrMultipleValues = errors.New("option should not have multiple values")
	ErrNotANumber     = errors.New("option expects a number")
	ErrNotABoolean    = errors.New("option expects a boolean")
	ErrBooleanValue   = errors.New("boolean option does not take a value")
	ErrMissingTarget  = errors.New("missing target")
	ErrDuplicateFlags = errors.New("duplicate flags")
)

// SettingsError reports a mistake in the option definitions themselves:
// a malformed definition string, an ill-typed default literal or a flag name
// declared twice. It surfaces when definitions are parsed, before any
// argument is examined, and is never subject to the exit-on-error policy.
type SettingsError struct {
	Key string // definition-set key, empty for whole-set errors
	Err error
}

func (e *SettingsError) Error() string {
	if e.Key == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("definition %q: %s", e.Key, e.Err)
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// ValidationError reports invalid user input against a valid definition set.
// Flag carries the alias(es) of the offending option in display form, or the
// raw token for unknown options. The wrapped sentinel identifies the rule
// violated for errors.Is checks.
type ValidationError struct {
	Flag string
	Err  error
	msg  string
}

func newValidationError(err error, flag, format string, args ...any) *ValidationError {
	return &ValidationError{Flag: flag, Err: err, msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.msg
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
