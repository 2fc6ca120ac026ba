package employee

import (
	"context"

	"staffdesk/internal/crud"
	"staffdesk/internal/forms"
	"staffdesk/internal/shared/apperror"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Fields mirrors the administrative employee form: identity and pay
// details plus the coarse role. The password is write-only and optional
// on edit (blank keeps the current secret).
var Fields = []forms.Field{
	{Name: "name", Kind: forms.Text, Required: true},
	{Name: "position", Kind: forms.Text, Required: true},
	{Name: "pay_rate", Kind: forms.Decimal, Required: true, Min: forms.MinValue(0)},
	{Name: "email", Kind: forms.Email, Required: true},
	{Name: "phone_number", Kind: forms.Text, Required: true},
	{Name: "role", Kind: forms.Enum, Enum: []string{RoleSuperAdmin, RoleStaff}},
	{Name: "password", Kind: forms.Text},
}

func NewDescriptor() crud.Descriptor[Employee] {
	return crud.Descriptor[Employee]{
		Name:   "employee",
		Fields: Fields,

		Apply: func(d forms.Decoded, e *Employee) error {
			e.Name = d.String("name")
			e.Position = d.String("position")
			e.PayRate = d.Float("pay_rate")
			e.Email = d.String("email")
			e.PhoneNumber = d.String("phone_number")

			if d.Has("role") && d.String("role") != "" {
				e.Role = d.String("role")
			} else if e.Role == "" {
				e.Role = RoleStaff
			}
			// Elevated flags follow the role; regular staff hold neither.
			e.IsSuperuser = e.Role == RoleSuperAdmin
			e.IsStaff = e.Role == RoleSuperAdmin

			if d.Has("password") && d.String("password") != "" {
				hashed, err := bcrypt.GenerateFromPassword([]byte(d.String("password")), bcrypt.DefaultCost)
				if err != nil {
					return err
				}
				e.PasswordHash = string(hashed)
			}
			return nil
		},

		Validate: func(ctx context.Context, tx *gorm.DB, d forms.Decoded, currentID uint) (forms.Errors, error) {
			var errs forms.Errors

			if email := d.String("email"); email != "" {
				taken, err := EmailTaken(ctx, tx, email, currentID)
				if err != nil {
					return nil, err
				}
				if taken {
					errs.AddDuplicate("email", "An employee with this email already exists")
				}
			}

			return errs, nil
		},

		BeforeDelete: cascadeDelete,

		Response: func(e *Employee) any {
			return ToResponse(e)
		},
	}
}

// cascadeDelete applies the ownership rules when an employee goes away:
// clock records and holiday requests are owned exclusively and die with
// the employee, while tasks survive with their assignment cleared. All
// three statements share the delete operation's transaction.
func cascadeDelete(ctx context.Context, tx *gorm.DB, e *Employee) error {
	if err := tx.WithContext(ctx).Exec(
		"DELETE FROM clock_records WHERE employee_id = ?", e.ID,
	).Error; err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to remove the employee's clock records", 500)
	}

	if err := tx.WithContext(ctx).Exec(
		"DELETE FROM holiday_requests WHERE employee_id = ?", e.ID,
	).Error; err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to remove the employee's holiday requests", 500)
	}

	if err := tx.WithContext(ctx).Exec(
		"UPDATE tasks SET assigned_to = NULL WHERE assigned_to = ?", e.ID,
	).Error; err != nil {
		return apperror.Wrap(err, apperror.CodeInternalError,
			"Failed to unassign the employee's tasks", 500)
	}

	return nil
}
