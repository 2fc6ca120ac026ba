package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeDuplicateUnique    = "DUPLICATE_UNIQUE"

	// Field-level validation codes, carried in the details of a
	// VALIDATION_FAILED response.
	CodeMissingField      = "MISSING_FIELD"
	CodeInvalidFieldValue = "INVALID_FIELD_VALUE"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
