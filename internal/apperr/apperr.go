// Package apperr tags errors with a closed set of kinds so callers branch on
// kind, never on message text.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota + 1
	Authorization
	DomainState
	Dependency
	NotFound
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Authorization:
		return "authorization"
	case DomainState:
		return "domain_state"
	case Dependency:
		return "dependency"
	case NotFound:
		return "not_found"
	}
	return "unknown"
}

type Error struct {
	Kind    Kind
	Message string
	Err     error // optional underlying cause
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or 0 if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error kind to the status the API responds with.
// Unkinded errors are treated as internal.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case Authorization:
		return http.StatusForbidden
	case DomainState:
		return http.StatusConflict
	case Dependency:
		return http.StatusBadGateway
	case NotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
