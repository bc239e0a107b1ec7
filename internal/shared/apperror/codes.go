package apperror

const (
	CodeInvalidInput = "INVALID_INPUT"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"

	CodeInternalError = "INTERNAL_ERROR"
)
