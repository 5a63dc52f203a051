// Package apperr defines the error kinds the services produce and the
// HTTP status each kind maps to at the transport layer.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidInput
	KindInsufficientStock
	KindInvalidState
	KindForbidden
	KindUnauthorized
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(message string) *Error          { return New(KindNotFound, message) }
func InvalidInput(message string) *Error      { return New(KindInvalidInput, message) }
func InsufficientStock(message string) *Error { return New(KindInsufficientStock, message) }
func InvalidState(message string) *Error      { return New(KindInvalidState, message) }
func Forbidden(message string) *Error         { return New(KindForbidden, message) }
func Unauthorized(message string) *Error      { return New(KindUnauthorized, message) }

// KindOf reports the kind of err. Errors that did not originate from this
// package are classified as internal.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidInput, KindInsufficientStock, KindInvalidState:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
