package clockrecord

import (
	"time"
)

// ClockRecord is exclusively owned by its employee: the row goes away
// when the employee does. A nil ClockOut means the employee is still
// clocked in.
type ClockRecord struct {
	ID         uint        `gorm:"primaryKey"`
	EmployeeID uint        `gorm:"not null;index"`
	ClockIn    time.Time   `gorm:"not null"`
	ClockOut   *time.Time  `gorm:""`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (ClockRecord) TableName() string {
	return "clock_records"
}

// EmployeeRef is a read-only projection of the employees table, enough
// to show who a record belongs to without importing that package.
type EmployeeRef struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

type Response struct {
	ID           uint    `json:"id"`
	EmployeeID   uint    `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	ClockIn      string  `json:"clock_in"`
	ClockOut     *string `json:"clock_out,omitempty"`
}

func ToResponse(r *ClockRecord) Response {
	resp := Response{
		ID:         r.ID,
		EmployeeID: r.EmployeeID,
		ClockIn:    r.ClockIn.Format(time.RFC3339),
	}
	if r.ClockOut != nil {
		v := r.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	if r.Employee != nil {
		resp.EmployeeName = r.Employee.Name
	}
	return resp
}
