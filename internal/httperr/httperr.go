// Package httperr is the closed set of error kinds the API can return.
// Every failure a handler surfaces is one of these; the echo error
// handler in internal/api turns them into {status, message} JSON.
package httperr

import (
	"fmt"
	"net/http"
)

// Error carries an HTTP status and a message, which is either a single
// string or, for validation failures, a list of violation strings.
type Error struct {
	Status  int `json:"status"`
	Message any `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v (status %d)", e.Message, e.Status)
}

func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Validation wraps schema violation messages. The message is always an
// array, even for a single violation.
func Validation(msgs []string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msgs}
}

func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

func Internal() *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error"}
}
