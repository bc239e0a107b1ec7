package apperror

import (
	"errors"
	"net/http"
)

// HTTPError is the transport view of an error returned by a service.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

// ToHTTP classifies err. Anything that is not an *AppError is treated as a
// storage failure and hidden behind a generic 500.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{
			Status:  status,
			Code:    appErr.Code,
			Message: appErr.Message,
		}
	}

	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}
