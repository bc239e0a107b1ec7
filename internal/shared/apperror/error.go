package apperror

import (
	"fmt"
	"net/http"
)

// AppError is an error that already knows how it is reported to a client.
type AppError struct {
	Code       string
	Message    string // shown to the client as the detail
	HTTPStatus int
	Err        error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// Wrap attaches a client-facing code and message to err. It returns nil for a
// nil err.
func Wrap(err error, code, message string, httpStatus int) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// Internal hides err behind the generic 500 while keeping it for logs and
// errors.Is.
func Internal(err error) error {
	if err == nil {
		return nil
	}
	return Wrap(err, CodeInternalError, ErrInternal.Message, http.StatusInternalServerError)
}

// WithMessage returns a copy of e with a more specific message. The copy
// wraps e, so errors.Is(copy, e) still holds.
func (e *AppError) WithMessage(message string) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    message,
		HTTPStatus: e.HTTPStatus,
		Err:        e,
	}
}
