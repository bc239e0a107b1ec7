package employee

import (
	departmenterrors "go-hrms/internal/department/errors"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/dberror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if dberror.IsNotFound(err) {
		return employeeerrors.ErrEmployeeNotFound
	}

	// uq_employees_email is the only unique index on the table.
	if dberror.IsUniqueViolation(err) {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	// The only foreign key is department_id.
	if dberror.IsForeignKeyViolation(err) {
		return departmenterrors.ErrDepartmentNotFound
	}

	return apperror.Internal(err)
}
