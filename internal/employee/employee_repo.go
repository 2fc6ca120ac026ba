package employee

import (
	"context"

	"staffdesk/internal/crud"

	"gorm.io/gorm"
)

// Directory is the lookup surface the auth layer needs; it is satisfied
// by *Repository.
type Directory interface {
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindByID(ctx context.Context, id uint) (*Employee, error)
}

// Repository extends the generic store with the credential and
// uniqueness queries specific to employees.
type Repository struct {
	*crud.GormRepository[Employee]
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		GormRepository: crud.NewRepository[Employee](db),
		db:             db,
	}
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&e).Error
	return &e, err
}

// EmailTaken reports whether another employee already owns the email.
// excludeID is the record under edit, zero on create.
func EmailTaken(ctx context.Context, tx *gorm.DB, email string, excludeID uint) (bool, error) {
	var count int64
	q := tx.WithContext(ctx).Model(&Employee{}).Where("email = ?", email)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

// Exists resolves a reference to an employee identifier. Descriptors of
// dependent entities call this inside their own transactions.
func Exists(ctx context.Context, tx *gorm.DB, id uint) (bool, error) {
	var count int64
	err := tx.WithContext(ctx).Model(&Employee{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
