package crud

import (
	"context"

	"gorm.io/gorm"
)

// Store is the persistence contract the generic workflow runs against.
// WithTx rebinds the store to an open transaction so a whole operation,
// cascades included, commits or rolls back as one unit.
type Store[E any] interface {
	WithTx(tx *gorm.DB) Store[E]
	Create(ctx context.Context, e *E) error
	FindAll(ctx context.Context) ([]E, error)
	FindByID(ctx context.Context, id uint) (*E, error)
	Update(ctx context.Context, e *E) error
	Delete(ctx context.Context, id uint) error
}

// GormRepository is the stock Store implementation. Every entity uses it
// as-is or embeds it to add entity-specific queries.
type GormRepository[E any] struct {
	db *gorm.DB
}

func NewRepository[E any](db *gorm.DB) *GormRepository[E] {
	return &GormRepository[E]{db: db}
}

func (r *GormRepository[E]) WithTx(tx *gorm.DB) Store[E] {
	return &GormRepository[E]{db: tx}
}

func (r *GormRepository[E]) Create(ctx context.Context, e *E) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *GormRepository[E]) FindAll(ctx context.Context) ([]E, error) {
	var rows []E
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *GormRepository[E]) FindByID(ctx context.Context, id uint) (*E, error) {
	var row E
	err := r.db.WithContext(ctx).First(&row, id).Error
	return &row, err
}

func (r *GormRepository[E]) Update(ctx context.Context, e *E) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *GormRepository[E]) Delete(ctx context.Context, id uint) error {
	var e E
	return r.db.WithContext(ctx).Delete(&e, id).Error
}
