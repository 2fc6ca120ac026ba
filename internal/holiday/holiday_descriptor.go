package holiday

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
	{Name: "start_date", Kind: forms.Date, Required: true},
	{Name: "end_date", Kind: forms.Date, Required: true},
	{Name: "status", Kind: forms.Enum, Enum: []string{StatusPending, StatusApproved, StatusRejected}},
	{Name: "reason", Kind: forms.Text, Required: true},
}

func NewDescriptor() crud.Descriptor[HolidayRequest] {
	return crud.Descriptor[HolidayRequest]{
		Name:   "holiday_request",
		Fields: Fields,

		Apply: func(d forms.Decoded, e *HolidayRequest) error {
			if ref := d.Ref("employee"); ref != nil {
				e.EmployeeID = *ref
			}
			e.StartDate = d.Time("start_date")
			e.EndDate = d.Time("end_date")
			e.Reason = d.String("reason")

			if d.Has("status") && d.String("status") != "" {
				e.Status = d.String("status")
			} else if e.Status == "" {
				e.Status = StatusPending
			}
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

			if d.Has("start_date") && d.Has("end_date") {
				if d.Time("end_date").Before(d.Time("start_date")) {
					errs.Add("end_date", apperror.CodeInvalidFieldValue,
						"End Date must not precede Start Date")
				}
			}

			return errs, nil
		},

		Response: func(e *HolidayRequest) any {
			return ToResponse(e)
		},
	}
}
