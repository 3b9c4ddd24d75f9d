// Package apperror defines the error taxonomy shared by services and
// controllers. Services return an *AppError wrapping one of the sentinel
// errors; controllers map the sentinel to an HTTP status. Anything that is
// not an AppError is treated as an internal error and answered with a
// generic 500 so storage or media-host details never leak to callers.
package apperror

import (
	"errors"
	"net/http"
)

var (
	ErrValidation         = errors.New("validation error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
)

type AppError struct {
	Err     error  // sentinel for classification
	Message string // human-readable message returned to the client
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Validation(message string) *AppError {
	return &AppError{Err: ErrValidation, Message: message}
}

// InvalidCredentials returns the deliberately unified login failure.
// Unknown phone and wrong password must be indistinguishable so callers
// cannot probe which accounts exist.
func InvalidCredentials() *AppError {
	return &AppError{Err: ErrInvalidCredentials, Message: "invalid phone number or password"}
}

func NotFound(message string) *AppError {
	return &AppError{Err: ErrNotFound, Message: message}
}

func Conflict(message string) *AppError {
	return &AppError{Err: ErrConflict, Message: message}
}

// Status maps an error to the HTTP status code the API documents.
// Conflict and invalid credentials are surfaced as 400, not 409/401.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
