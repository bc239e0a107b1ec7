package departmenterrors

import (
	"fmt"
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Department with the same name already exists",
		http.StatusBadRequest,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid department ID",
		http.StatusBadRequest,
	)
)

func NotFound(id int64) error {
	return ErrDepartmentNotFound.WithMessage(fmt.Sprintf("Department with id %d not found", id))
}

func NameTaken(name string) error {
	return ErrDepartmentAlreadyExists.WithMessage(fmt.Sprintf("Department with name '%s' already exists", name))
}
