package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure carries an HTTP status next to the message that is safe to show a client.
// The optional cause is kept for logs and errors.Is/As but never rendered.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	cause   error
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

// BadRequest turns a decoding or validation error into a 400. A nil error stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusBadRequest, Message: err.Error(), cause: err}
}

func BadRequestFromString(msg string) error {
	return &Failure{Code: http.StatusBadRequest, Message: msg}
}

// BadRequestf is BadRequestFromString with formatting.
func BadRequestf(format string, args ...any) error {
	return BadRequestFromString(fmt.Sprintf(format, args...))
}

func Unauthorized(msg string) error {
	return &Failure{Code: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Failure{Code: http.StatusForbidden, Message: msg}
}

// NotFound reports a missing (or soft deleted) entity.
func NotFound(msg string) error {
	return &Failure{Code: http.StatusNotFound, Message: msg}
}

// Conflict reports a state clash: a taken slug, an occupied room, a booking that
// can no longer move to the requested status.
func Conflict(msg string) error {
	return &Failure{Code: http.StatusConflict, Message: msg}
}

func Conflictf(format string, args ...any) error {
	return Conflict(fmt.Sprintf(format, args...))
}

// InternalError wraps an unexpected error. The response layer masks its message.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{Code: http.StatusInternalServerError, Message: err.Error(), cause: err}
}

// GetCode returns the status carried by err, or 500 when err is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// Is reports whether err carries the given status. A nil error matches nothing.
func Is(err error, code int) bool {
	return err != nil && GetCode(err) == code
}

func IsNotFound(err error) bool {
	return Is(err, http.StatusNotFound)
}

func IsConflict(err error) bool {
	return Is(err, http.StatusConflict)
}
