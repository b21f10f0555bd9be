// Package apperrors defines the error taxonomy shared by services and the
// HTTP boundary. Services return *Error values; the Fiber error handler
// maps them to status codes and the {status, message, error} envelope.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Kind classifies an error for HTTP mapping.
type Kind int

const (
	Internal Kind = iota
	NotFound
	Conflict
	Forbidden
	Unauthorized
	BadRequest
	ServiceUnavailable
)

// Error is a classified application error.
type Error struct {
	Kind     Kind
	Message  string
	Messages []string // set for validation failures, rendered as an array
	Err      error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus returns the status code for the error's kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Forbidden:
		return http.StatusForbidden
	case Unauthorized:
		return http.StatusUnauthorized
	case BadRequest:
		return http.StatusBadRequest
	case ServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Label returns the category label included in error responses.
func (e *Error) Label() string {
	switch e.Kind {
	case NotFound:
		return "Not Found"
	case Conflict:
		return "Conflict"
	case Forbidden:
		return "Forbidden"
	case Unauthorized:
		return "Unauthorized"
	case BadRequest:
		return "Bad Request"
	case ServiceUnavailable:
		return "Service Unavailable"
	default:
		return "Internal Server Error"
	}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: NotFound, Message: fmt.Sprintf(format, args...)}
}

func Conflictf(format string, args ...interface{}) *Error {
	return &Error{Kind: Conflict, Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...interface{}) *Error {
	return &Error{Kind: Forbidden, Message: fmt.Sprintf(format, args...)}
}

func Unauthorizedf(format string, args ...interface{}) *Error {
	return &Error{Kind: Unauthorized, Message: fmt.Sprintf(format, args...)}
}

func BadRequestf(format string, args ...interface{}) *Error {
	return &Error{Kind: BadRequest, Message: fmt.Sprintf(format, args...)}
}

func Unavailablef(format string, args ...interface{}) *Error {
	return &Error{Kind: ServiceUnavailable, Message: fmt.Sprintf(format, args...)}
}

func Internalf(format string, args ...interface{}) *Error {
	return &Error{Kind: Internal, Message: fmt.Sprintf(format, args...)}
}

// Validation wraps field validation messages as a BadRequest error.
func Validation(messages []string) *Error {
	return &Error{Kind: BadRequest, Message: "validation failed", Messages: messages}
}

// IsDuplicateKey reports whether err is a unique-constraint violation,
// covering gorm's translated error and the raw postgres 23505 signal.
func IsDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// FromDB classifies a database error: missing rows become NotFound with the
// given message, duplicate keys become Conflict, anything else Internal.
func FromDB(err error, notFoundMessage string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &Error{Kind: NotFound, Message: notFoundMessage, Err: err}
	case IsDuplicateKey(err):
		return &Error{Kind: Conflict, Message: "duplicate key value violates a unique constraint", Err: err}
	default:
		return &Error{Kind: Internal, Message: "unexpected database error", Err: err}
	}
}
