package autherrors

import (
	"net/http"

	"staffdesk/internal/shared/apperror"
)

var (
	// ErrInvalidCredentials is deliberately the only failure a login
	// attempt can surface: an unknown email and a wrong password are
	// indistinguishable to the caller.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidCredentials,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
)
