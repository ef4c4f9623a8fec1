package tolerance

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Error classification wrappers
// ---------------------------------------------------------------------------.

type (
	// suppressibleError marks a wrapped error as suppressible regardless of
	// the configured error filter.
	suppressibleError struct {
		err error
	}

	// unsuppressibleError marks a wrapped error as one that must always
	// propagate, regardless of filter, switch result or disable state.
	unsuppressibleError struct {
		err error
	}
)

// PanicError carries a panic recovered from a wrapped function so it can
// flow through the same suppress-or-propagate decision as a returned error.
// When the decision is to propagate, the tolerator re-panics with Value.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("panic: %v", e.Value) }

func (e *suppressibleError) Error() string { return "suppressible: " + e.err.Error() }
func (e *suppressibleError) Unwrap() error { return e.err }

func (e *unsuppressibleError) Error() string { return "unsuppressible: " + e.err.Error() }
func (e *unsuppressibleError) Unwrap() error { return e.err }

// Suppressible wraps err to mark it as suppressible even when it does not
// match the tolerator's error filter. Returns nil if err is nil.
func Suppressible(err error) error {
	if err == nil {
		return nil
	}

	return &suppressibleError{err: err}
}

// Unsuppressible wraps err to mark it as always propagating. Explicit
// unsuppressible marking beats a Suppressible wrapper further down the
// chain. Returns nil if err is nil.
func Unsuppressible(err error) error {
	if err == nil {
		return nil
	}

	return &unsuppressibleError{err: err}
}

// IsSuppressible reports whether err was explicitly marked as suppressible.
// Returns false for nil and for unclassified errors.
func IsSuppressible(err error) bool {
	if err == nil {
		return false
	}

	var se *suppressibleError

	return errors.As(err, &se)
}

// IsUnsuppressible reports whether err was explicitly marked as always
// propagating. Returns false for nil and for unclassified errors.
func IsUnsuppressible(err error) bool {
	if err == nil {
		return false
	}

	var ue *unsuppressibleError

	return errors.As(err, &ue)
}
