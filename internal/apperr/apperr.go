package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an application error for the HTTP boundary.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindConfiguration
	KindProvider
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConfiguration:
		return "configuration"
	case KindProvider:
		return "provider"
	default:
		return "unknown"
	}
}

// Status returns the HTTP status class the kind is reported with.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is the typed error returned by the catalog and checkout layers.
type Error struct {
	Kind    Kind
	Message string
	// Fields holds per-field validation messages, if any.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so errors.Is(err, apperr.ErrNotFound) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrValidation    = &Error{Kind: KindValidation}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrProvider      = &Error{Kind: KindProvider}
)

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func ValidationFields(msg string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Configuration(msg string) *Error {
	return &Error{Kind: KindConfiguration, Message: msg}
}

// Provider wraps a failed payment provider call; the cause's message is kept for diagnostics.
func Provider(msg string, err error) *Error {
	return &Error{Kind: KindProvider, Message: msg, Err: err}
}

// KindOf returns the kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
