package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrInternal = New(
		CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Invalid input",
		http.StatusBadRequest,
	)
)

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}

func FieldTooLong(field, max string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s must be at most %s characters", field, max), http.StatusBadRequest)
}

func FieldTooSmall(field, min string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s must be at least %s", field, min), http.StatusBadRequest)
}
