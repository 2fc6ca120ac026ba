package task

import "time"

const (
	StatusNotStarted = "not_started"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"

	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
)

// Task holds a nullable, non-owning reference to an employee: when the
// employee is deleted the task survives with AssignedTo cleared.
// DateCreated is stamped once at creation and never edited.
type Task struct {
	ID          uint       `gorm:"primaryKey"`
	Text        string     `gorm:"type:varchar(255);not null"`
	Completed   bool       `gorm:"not null;default:false"`
	DateCreated time.Time  `gorm:"not null;autoCreateTime"`
	DueDate     *time.Time `gorm:"type:date"`
	AssignedTo  *uint      `gorm:"index"`
	Priority    int        `gorm:"not null"`
	Status      string     `gorm:"type:varchar(20);not null"`
	Description *string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Response struct {
	ID          uint    `json:"id"`
	Text        string  `json:"text"`
	Completed   bool    `json:"completed"`
	DateCreated string  `json:"date_created"`
	DueDate     *string `json:"due_date,omitempty"`
	AssignedTo  *uint   `json:"assigned_to,omitempty"`
	Priority    int     `json:"priority"`
	Status      string  `json:"status"`
	Description *string `json:"description,omitempty"`
}

func ToResponse(t *Task) Response {
	resp := Response{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		DateCreated: t.DateCreated.Format(time.RFC3339),
		AssignedTo:  t.AssignedTo,
		Priority:    t.Priority,
		Status:      t.Status,
		Description: t.Description,
	}
	if t.DueDate != nil {
		v := t.DueDate.Format("2006-01-02")
		resp.DueDate = &v
	}
	return resp
}
