package employee

import (
	"time"
)

const (
	RoleSuperAdmin = "super_admin"
	RoleStaff      = "staff"
)

// Employee doubles as the login account: Email is the credential
// identifier and PasswordHash holds the bcrypt digest. The hash never
// leaves the server.
type Employee struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"type:varchar(255);not null"`
	Position     string  `gorm:"type:varchar(100);not null"`
	PayRate      float64 `gorm:"type:decimal(10,2);not null"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhoneNumber  string  `gorm:"type:varchar(15);not null"`
	Role         string  `gorm:"type:varchar(20);not null;default:'staff'"`
	IsStaff      bool    `gorm:"not null;default:false"`
	IsSuperuser  bool    `gorm:"not null;default:false"`
	PasswordHash string  `gorm:"type:varchar(255)" json:"-"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Response is the client view; the password hash is deliberately absent.
type Response struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Position    string  `json:"position"`
	PayRate     float64 `json:"pay_rate"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phone_number"`
	Role        string  `json:"role"`
	IsStaff     bool    `json:"is_staff"`
	IsSuperuser bool    `json:"is_superuser"`
}

func ToResponse(e *Employee) Response {
	return Response{
		ID:          e.ID,
		Name:        e.Name,
		Position:    e.Position,
		PayRate:     e.PayRate,
		Email:       e.Email,
		PhoneNumber: e.PhoneNumber,
		Role:        e.Role,
		IsStaff:     e.IsStaff,
		IsSuperuser: e.IsSuperuser,
	}
}
