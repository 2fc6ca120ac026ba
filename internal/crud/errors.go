package crud

import (
	"errors"
	"net/http"
	"strings"

	"staffdesk/internal/forms"
	"staffdesk/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

var titleCaser = cases.Title(language.English)

func notFoundError(name string) *apperror.AppError {
	label := titleCaser.String(strings.ReplaceAll(name, "_", " "))
	return apperror.New(apperror.CodeNotFound, label+" not found", http.StatusNotFound)
}

// mapStoreError translates driver-level failures into coded errors. The
// unique-violation path is a backstop: duplicates are normally caught as
// field errors by the descriptor's Validate hook, but the store index is
// what actually enforces the invariant under concurrency.
func mapStoreError(name string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFoundError(name)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return duplicateError(name)
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") ||
		strings.Contains(errMsg, "unique constraint failed") {
		return duplicateError(name)
	}

	return err
}

func duplicateError(name string) *apperror.AppError {
	label := titleCaser.String(strings.ReplaceAll(name, "_", " "))
	return apperror.New(apperror.CodeDuplicateUnique,
		label+" with the same unique value already exists",
		http.StatusConflict,
	)
}

func validationError(errs forms.Errors) error {
	return apperror.Validation(errs)
}
