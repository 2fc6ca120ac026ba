// Package crud implements the entity-agnostic management workflow: one
// generic service and one handler run List, Create, Edit, and Delete for
// every entity type, differing only by the descriptor each entity
// declares. The descriptor carries the field set, the hooks that bind
// validated values onto the model, entity-level validation reaching into
// storage (uniqueness, reference existence, cross-field rules), and the
// cascade routine executed when a row is removed.
package crud

import (
	"context"

	"staffdesk/internal/forms"

	"gorm.io/gorm"
)

type Descriptor[E any] struct {
	// Name is the singular resource name used in logs and errors
	// ("employee", "clock_record").
	Name string

	// Fields is the ordered editable field set, consumed by validation
	// and returned as the form payload for create/edit views.
	Fields []forms.Field

	// Apply copies validated values onto the model. On edit it receives
	// the existing row, so anything it does not touch is preserved;
	// immutable fields stay immutable by omission.
	Apply func(d forms.Decoded, e *E) error

	// Validate runs entity-level checks inside the operation's
	// transaction: uniqueness, reference resolution, date ordering.
	// currentID is zero on create and the row's identifier on edit, so
	// uniqueness checks can exclude the record being edited. Returned
	// field errors join the decode errors; persistence only happens when
	// the combined list is empty.
	Validate func(ctx context.Context, tx *gorm.DB, d forms.Decoded, currentID uint) (forms.Errors, error)

	// BeforeDelete runs the entity's cascade and null-out rules in the
	// same transaction as the row removal.
	BeforeDelete func(ctx context.Context, tx *gorm.DB, e *E) error

	// Response maps a model to its client view.
	Response func(e *E) any
}
