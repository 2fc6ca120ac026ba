package employee

import (
	"context"

	employeeerrors "staffdesk/internal/employee/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProvisionInput is the privileged creation payload used by the control
// CLI; unlike the HTTP form it always requires a password.
type ProvisionInput struct {
	Name        string
	Position    string
	PayRate     float64
	Email       string
	PhoneNumber string
	Password    string
}

// ProvisionSuperAdmin creates an employee with the elevated role and
// flags set, the bootstrap path for the first administrator.
func ProvisionSuperAdmin(ctx context.Context, db *gorm.DB, in ProvisionInput) (*Employee, error) {
	logger := zap.L().Named("employee.provision")

	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, employeeerrors.ErrMissingRequiredFields
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer tx.Rollback()

	taken, err := EmailTaken(ctx, tx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, employeeerrors.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	e := &Employee{
		Name:         in.Name,
		Position:     in.Position,
		PayRate:      in.PayRate,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Role:         RoleSuperAdmin,
		IsStaff:      true,
		IsSuperuser:  true,
		PasswordHash: string(hashed),
	}

	if err := tx.Create(e).Error; err != nil {
		logger.Error("provision super admin persist failed", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	logger.Info("super admin provisioned",
		zap.Uint("employee_id", e.ID),
		zap.String("email", e.Email),
	)
	return e, nil
}
