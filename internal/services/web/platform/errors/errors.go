// Package errors classifies web handler failures into HTTP statuses.
package errors

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/louisbranch/hoaxify/internal/registration"
)

// Kind classifies application failures for consistent HTTP mapping.
type Kind string

const (
	KindUnknown      Kind = "unknown"
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
)

// Status returns the HTTP status for k.
func (k Kind) Status() int {
	switch k {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is a classified web failure. Message is safe to log; Key, when set,
// names the catalog entry shown to the user.
type Error struct {
	Kind    Kind
	Key     string
	Message string
	Err     error
}

func (e Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e Error) Unwrap() error {
	return e.Err
}

// E builds a classified error.
func E(kind Kind, message string) error {
	return Error{Kind: kind, Message: message}
}

// EK builds a classified error with a user-facing catalog key.
func EK(kind Kind, key string, message string) error {
	return Error{Kind: kind, Key: strings.TrimSpace(key), Message: message}
}

// Wrap classifies cause. A nil cause yields nil.
func Wrap(kind Kind, message string, cause error) error {
	if cause == nil {
		return nil
	}
	return Error{Kind: kind, Message: message, Err: cause}
}

// LocalizationKey returns the catalog key carried by err, if any.
func LocalizationKey(err error) string {
	var appErr Error
	if !stderrors.As(err, &appErr) {
		return ""
	}
	return appErr.Key
}

// registrationStatuses maps controller sentinels that reach a handler.
var registrationStatuses = []struct {
	target error
	status int
}{
	{registration.ErrUnknownField, http.StatusNotFound},
	{registration.ErrSubmissionPending, http.StatusConflict},
	{registration.ErrSubmitted, http.StatusConflict},
	{registration.ErrCannotSubmit, http.StatusBadRequest},
}

// HTTPStatus maps err to an HTTP status. Classified errors win over any
// registration error they wrap.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	var appErr Error
	if stderrors.As(err, &appErr) {
		return appErr.Kind.Status()
	}
	for _, entry := range registrationStatuses {
		if stderrors.Is(err, entry.target) {
			return entry.status
		}
	}
	var transport *registration.TransportFailure
	if stderrors.As(err, &transport) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
