package runner

import (
	"errors"
	"fmt"

	"github.com/wesleyorama2/benchkit/internal/params"
)

var (
	// ErrMissingProvider is returned when a subject names a provider the
	// case does not declare.
	ErrMissingProvider = errors.New("missing parameter provider")

	// ErrProviderFailure is returned when a provider errors or panics.
	ErrProviderFailure = errors.New("parameter provider failed")

	// ErrMissingHook is returned when a subject names a before-method the
	// case does not declare.
	ErrMissingHook = errors.New("missing before method")

	// ErrHookFailure is returned when a before-method errors or panics.
	ErrHookFailure = errors.New("before method failed")

	// ErrIterationFailure is returned when the subject itself errors or
	// panics.
	ErrIterationFailure = errors.New("iteration failed")
)

// Error carries the identity of the unit a failure stopped.
type Error struct {
	Kind    error
	Case    string
	Subject string
	Method  string     // provider, hook or subject method involved
	Params  params.Set // set when the failure is scoped to a parameter set
	Err     error      // underlying cause, may be nil
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s::%s: %s", e.Case, e.Subject, e.Kind)
	if e.Method != "" {
		msg += fmt.Sprintf(" %q", e.Method)
	}
	if e.Params != nil {
		msg += fmt.Sprintf(" with parameters [%s]", e.Params)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
