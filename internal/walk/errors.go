package walk

import (
	"errors"
	"fmt"
)

// Domain errors for registry resolution and walk construction.
var (
	// ErrNetwork indicates the registry could not be fetched.
	ErrNetwork = errors.New("walk: registry fetch failed")

	// ErrParse indicates a malformed registry document.
	ErrParse = errors.New("walk: malformed registry document")

	// ErrNotFound indicates no registry entry matches the requested name.
	ErrNotFound = errors.New("walk: seed entry not found")

	// ErrInvalidSeed indicates a seed that is not an exact integer.
	ErrInvalidSeed = errors.New("walk: seed is not an integer")

	// ErrConfiguration indicates an unusable setting such as an unknown
	// algorithm key, a negative depth or a zero-sized image.
	ErrConfiguration = errors.New("walk: invalid configuration")
)

// ResolveError wraps an error with the stage and entry it happened on.
type ResolveError struct {
	Stage   string
	Name    string
	Detail  string
	Wrapped error
}

func (e *ResolveError) Error() string {
	msg := e.Wrapped.Error()
	if e.Stage != "" {
		msg = e.Stage + ": " + msg
	}
	if e.Name != "" {
		msg = fmt.Sprintf("%s (name=%q)", msg, e.Name)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ResolveError) Unwrap() error {
	return e.Wrapped
}

// Errorf builds a ResolveError for the given stage wrapping a sentinel.
func Errorf(stage string, sentinel error, format string, args ...any) error {
	return &ResolveError{Stage: stage, Detail: fmt.Sprintf(format, args...), Wrapped: sentinel}
}
