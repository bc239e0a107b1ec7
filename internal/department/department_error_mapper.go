package department

import (
	departmenterrors "go-hrms/internal/department/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/dberror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if dberror.IsNotFound(err) {
		return departmenterrors.ErrDepartmentNotFound
	}

	// uq_departments_name is the only unique index on the table.
	if dberror.IsUniqueViolation(err) {
		return departmenterrors.ErrDepartmentAlreadyExists
	}

	return apperror.Internal(err)
}
