package forms

import (
	"fmt"
	"strings"

	"staffdesk/internal/shared/apperror"
)

// FieldError reports a single failing field. A submission's errors are
// always collected in full before being returned, so a caller sees every
// problem at once.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *Errors) AddMissing(f Field) {
	*e = append(*e, FieldError{
		Field:   f.Name,
		Code:    apperror.CodeMissingField,
		Message: f.DisplayLabel() + " is required",
	})
}

func (e *Errors) AddInvalid(f Field, reason string) {
	*e = append(*e, FieldError{
		Field:   f.Name,
		Code:    apperror.CodeInvalidFieldValue,
		Message: f.DisplayLabel() + " " + reason,
	})
}

func (e *Errors) AddDuplicate(field, message string) {
	*e = append(*e, FieldError{
		Field:   field,
		Code:    apperror.CodeDuplicateUnique,
		Message: message,
	})
}

func (e *Errors) Add(field, code, message string) {
	*e = append(*e, FieldError{Field: field, Code: code, Message: message})
}
