package task

import (
	"context"

	"staffdesk/internal/crud"
	"staffdesk/internal/employee"
	"staffdesk/internal/forms"
	"staffdesk/internal/shared/apperror"

	"gorm.io/gorm"
)

var Fields = []forms.Field{
	{Name: "text", Kind: forms.Text, Required: true},
	{Name: "completed", Kind: forms.Bool},
	{Name: "due_date", Kind: forms.Date},
	{Name: "assigned_to", Kind: forms.Ref},
	{Name: "priority", Kind: forms.IntEnum, Required: true, IntEnum: []int{PriorityLow, PriorityMedium, PriorityHigh}},
	{Name: "status", Kind: forms.Enum, Required: true, Enum: []string{StatusNotStarted, StatusInProgress, StatusCompleted}},
	{Name: "description", Kind: forms.Text},
}

func NewDescriptor() crud.Descriptor[Task] {
	return crud.Descriptor[Task]{
		Name:   "task",
		Fields: Fields,

		// DateCreated is deliberately never assigned here: the store
		// stamps it on insert and edits leave it untouched.
		Apply: func(d forms.Decoded, e *Task) error {
			e.Text = d.String("text")
			if d.Has("completed") {
				e.Completed = d.Bool("completed")
			}
			if d.Has("due_date") {
				e.DueDate = d.TimePtr("due_date")
			}
			if d.Has("assigned_to") {
				e.AssignedTo = d.Ref("assigned_to")
			}
			e.Priority = d.Int("priority")
			e.Status = d.String("status")
			if d.Has("description") {
				if s := d.String("description"); s != "" {
					e.Description = &s
				} else {
					e.Description = nil
				}
			}
			return nil
		},

		Validate: func(ctx context.Context, tx *gorm.DB, d forms.Decoded, _ uint) (forms.Errors, error) {
			var errs forms.Errors

			if ref := d.Ref("assigned_to"); ref != nil {
				exists, err := employee.Exists(ctx, tx, *ref)
				if err != nil {
					return nil, err
				}
				if !exists {
					errs.Add("assigned_to", apperror.CodeInvalidFieldValue,
						"Assigned To must reference an existing employee")
				}
			}

			return errs, nil
		},

		Response: func(e *Task) any {
			return ToResponse(e)
		},
	}
}
