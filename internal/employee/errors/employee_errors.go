package employeeerrors

import (
	"fmt"
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
)

func NotFound(id int64) error {
	return ErrEmployeeNotFound.WithMessage(fmt.Sprintf("Employee with id %d not found", id))
}

func EmailTaken(email string) error {
	return ErrEmployeeAlreadyExists.WithMessage(fmt.Sprintf("Employee with email '%s' already exists", email))
}
