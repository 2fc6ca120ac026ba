package clockrecord

import (
	"context"

	"staffdesk/internal/crud"
	"staffdesk/internal/employee"
	"staffdesk/internal/forms"
	"staffdesk/internal/shared/apperror"

	"gorm.io/gorm"
)

var Fields = []forms.Field{
	{Name: "employee", Kind: forms.Ref, Required: true},
	{Name: "clock_in", Kind: forms.DateTime, Required: true},
	{Name: "clock_out", Kind: forms.DateTime},
}

func NewDescriptor() crud.Descriptor[ClockRecord] {
	return crud.Descriptor[ClockRecord]{
		Name:   "clock_record",
		Fields: Fields,

		Apply: func(d forms.Decoded, e *ClockRecord) error {
			if ref := d.Ref("employee"); ref != nil {
				e.EmployeeID = *ref
			}
			e.ClockIn = d.Time("clock_in")
			e.ClockOut = d.TimePtr("clock_out")
			e.Employee = nil
			return nil
		},

		Validate: func(ctx context.Context, tx *gorm.DB, d forms.Decoded, _ uint) (forms.Errors, error) {
			var errs forms.Errors

			if ref := d.Ref("employee"); ref != nil {
				exists, err := employee.Exists(ctx, tx, *ref)
				if err != nil {
					return nil, err
				}
				if !exists {
					errs.Add("employee", apperror.CodeInvalidFieldValue,
						"Employee must reference an existing employee")
				}
			}

			// A shift cannot end before it starts.
			if out := d.TimePtr("clock_out"); out != nil && d.Has("clock_in") {
				if out.Before(d.Time("clock_in")) {
					errs.Add("clock_out", apperror.CodeInvalidFieldValue,
						"Clock Out must not precede Clock In")
				}
			}

			return errs, nil
		},

		Response: func(e *ClockRecord) any {
			return ToResponse(e)
		},
	}
}
