package holiday

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// HolidayRequest is exclusively owned by its employee (cascade delete).
// New requests start pending; approval and rejection are just edits of
// the status field by whoever reviews them.
type HolidayRequest struct {
	ID         uint      `gorm:"primaryKey"`
	EmployeeID uint      `gorm:"not null;index"`
	StartDate  time.Time `gorm:"type:date;not null"`
	EndDate    time.Time `gorm:"type:date;not null"`
	Status     string    `gorm:"type:varchar(10);not null;default:'pending'"`
	Reason     string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (HolidayRequest) TableName() string {
	return "holiday_requests"
}

type Response struct {
	ID         uint   `json:"id"`
	EmployeeID uint   `json:"employee_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	Status     string `json:"status"`
	Reason     string `json:"reason"`
}

func ToResponse(r *HolidayRequest) Response {
	return Response{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		StartDate:  r.StartDate.Format("2006-01-02"),
		EndDate:    r.EndDate.Format("2006-01-02"),
		Status:     r.Status,
		Reason:     r.Reason,
	}
}
