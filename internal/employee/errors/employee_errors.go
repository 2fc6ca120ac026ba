package employeeerrors

import (
	"net/http"

	"staffdesk/internal/shared/apperror"
)

var (
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeDuplicateUnique,
		"An employee with this email already exists",
		http.StatusConflict,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Missing required fields",
		http.StatusBadRequest,
	)
)
