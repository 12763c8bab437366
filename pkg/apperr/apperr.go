// Package apperr classifies service errors so HTTP handlers can map them to
// status codes without knowing where they came from.
package apperr

import (
	"context"
	"errors"
	"net/http"
)

type Kind string

const (
	KindValidation   Kind = "validation"
	KindNotFound     Kind = "not_found"
	KindForbidden    Kind = "forbidden"
	KindConflict     Kind = "conflict"
	KindCollaborator Kind = "collaborator"
	KindPersistence  Kind = "persistence"
	KindInternal     Kind = "internal"
)

type Error struct {
	Kind    Kind
	Message string
	// Fields carries per-field detail for validation failures.
	Fields map[string]string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return e.Message + ": " + e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func NotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Collaborator(message string, err error) *Error {
	return &Error{Kind: KindCollaborator, Message: message, Err: err}
}

func Persistence(message string, err error) *Error {
	return &Error{Kind: KindPersistence, Message: message, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func isKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// IsRetryable reports whether a caller may retry the same request unchanged.
func IsRetryable(err error) bool {
	return isKind(err, KindCollaborator)
}

// HTTPStatus maps err to a response status. Collaborator errors caused by a
// deadline map to 504, other collaborator failures to 502.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindCollaborator:
		if errors.Is(err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// FieldsOf returns the validation field map carried by err, if any.
func FieldsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Fields
	}
	return nil
}

// MessageOf returns the client-facing message for err. Internal and
// persistence errors never leak their cause.
func MessageOf(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "An unexpected error occurred on the server"
	}
	switch e.Kind {
	case KindPersistence, KindInternal:
		if e.Message != "" {
			return e.Message
		}
		return "An unexpected error occurred on the server"
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Error()
}
