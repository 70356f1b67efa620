package registration

import (
	"errors"
	"fmt"
	"maps"
)

var (
	// ErrSubmissionPending is returned when a submit arrives while another
	// submission for the same form is in flight.
	ErrSubmissionPending = errors.New("registration: submission already pending")
	// ErrCannotSubmit is returned when the submit control is disabled.
	ErrCannotSubmit = errors.New("registration: form cannot be submitted")
	// ErrSubmitted is returned for operations on a form that already succeeded.
	ErrSubmitted = errors.New("registration: form already submitted")
	// ErrUnknownField is returned for edits to a field the form does not have.
	ErrUnknownField = errors.New("registration: unknown field")
)

// ValidationFailure carries per-field messages reported by the user API.
type ValidationFailure struct {
	Errors map[string]string
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("registration: validation failed for %d field(s)", len(e.Errors))
}

// FieldErrors returns a copy of the reported messages.
func (e *ValidationFailure) FieldErrors() map[string]string {
	if e == nil {
		return map[string]string{}
	}
	return maps.Clone(e.Errors)
}

// TransportFailure is any upstream failure without per-field detail.
type TransportFailure struct {
	// StatusCode is the upstream HTTP status, zero when no response arrived.
	StatusCode int
	Cause      error
}

func (e *TransportFailure) Error() string {
	switch {
	case e.Cause != nil && e.StatusCode != 0:
		return fmt.Sprintf("registration: upstream status %d: %v", e.StatusCode, e.Cause)
	case e.Cause != nil:
		return fmt.Sprintf("registration: upstream request failed: %v", e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("registration: upstream status %d", e.StatusCode)
	default:
		return "registration: upstream request failed"
	}
}

func (e *TransportFailure) Unwrap() error {
	return e.Cause
}

// AsValidationFailure extracts per-field errors from err.
func AsValidationFailure(err error) (map[string]string, bool) {
	var failure *ValidationFailure
	if !errors.As(err, &failure) || failure == nil {
		return nil, false
	}
	return failure.FieldErrors(), true
}
