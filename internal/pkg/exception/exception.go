package exception

import (
	"errors"
	"fmt"
	"net/http"
)

// ApplicationError handles application level errors. StatusCode is the HTTP
// status the transport layer answers with, Message is what the client sees.
type ApplicationError struct {
	Message    string
	StatusCode int
	Cause      error
}

// Error interface implementation.
func (e ApplicationError) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Cause)
}

func (e ApplicationError) Unwrap() error {
	if e.Cause == nil {
		return errors.New(e.Message)
	}

	return e.Cause
}

func (e ApplicationError) Is(target error) bool {
	var targetErr ApplicationError

	if !errors.As(target, &targetErr) {
		return false
	}

	if e.Message != targetErr.Message {
		return false
	}

	if e.Cause == nil || targetErr.Cause == nil {
		return e.Cause == nil && targetErr.Cause == nil
	}

	return errors.Is(e.Cause, targetErr.Cause)
}

// ErrorCode returns error code for an application error.
func (e ApplicationError) ErrorCode() int {
	return e.StatusCode
}

// WithCause builds a client facing error that still matches cause via errors.Is.
func WithCause(statusCode int, msg string, cause error) ApplicationError {
	return ApplicationError{Message: msg, StatusCode: statusCode, Cause: cause}
}

func BadRequest(msg string) ApplicationError {
	return ApplicationError{Message: msg, StatusCode: http.StatusBadRequest}
}

func NotFound(msg string) ApplicationError {
	return ApplicationError{Message: msg, StatusCode: http.StatusNotFound}
}

func Unauthorized(msg string) ApplicationError {
	return ApplicationError{Message: msg, StatusCode: http.StatusUnauthorized}
}
