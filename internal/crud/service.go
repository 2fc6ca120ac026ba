package crud

import (
	"context"

	"staffdesk/internal/forms"
	"staffdesk/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Orchestrator is the entity-agnostic operation surface the handler
// talks to. Service[E] implements it for every entity type.
type Orchestrator interface {
	Fields() []forms.Field
	List(ctx context.Context) ([]any, error)
	Get(ctx context.Context, id uint) (any, error)
	Create(ctx context.Context, in map[string]any) (any, error)
	Update(ctx context.Context, id uint, in map[string]any) (any, error)
	Delete(ctx context.Context, id uint) error
}

type Service[E any] struct {
	db     *gorm.DB
	store  Store[E]
	desc   Descriptor[E]
	logger *zap.Logger
}

func NewService[E any](db *gorm.DB, store Store[E], desc Descriptor[E], logger ...*zap.Logger) *Service[E] {
	l := zap.L().Named(desc.Name + ".service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named(desc.Name + ".service")
	}
	return &Service[E]{
		db:     db,
		store:  store,
		desc:   desc,
		logger: l,
	}
}

func (s *Service[E]) Fields() []forms.Field {
	return forms.Describe(s.desc.Fields)
}

func (s *Service[E]) List(ctx context.Context) ([]any, error) {
	rows, err := s.store.FindAll(ctx)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("list failed", zap.Error(err))
		return nil, mapStoreError(s.desc.Name, err)
	}

	out := make([]any, len(rows))
	for i := range rows {
		out[i] = s.desc.Response(&rows[i])
	}
	return out, nil
}

func (s *Service[E]) Get(ctx context.Context, id uint) (any, error) {
	row, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(s.desc.Name, err)
	}
	return s.desc.Response(row), nil
}

func (s *Service[E]) Create(ctx context.Context, in map[string]any) (any, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create requested")

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error("create begin tx failed", zap.Error(tx.Error))
		return nil, tx.Error
	}
	defer tx.Rollback()

	dec, ferrs := forms.Decode(s.desc.Fields, in)
	if s.desc.Validate != nil {
		extra, err := s.desc.Validate(ctx, tx, dec, 0)
		if err != nil {
			log.Error("create validation query failed", zap.Error(err))
			return nil, err
		}
		ferrs = append(ferrs, extra...)
	}
	if len(ferrs) > 0 {
		log.Warn("create validation failed",
			zap.Int("field_errors", len(ferrs)),
		)
		return nil, validationError(ferrs)
	}

	e := new(E)
	if err := s.desc.Apply(dec, e); err != nil {
		log.Error("create apply failed", zap.Error(err))
		return nil, err
	}

	qtx := s.store.WithTx(tx)
	if err := qtx.Create(ctx, e); err != nil {
		log.Error("create persist failed", zap.Error(err))
		return nil, mapStoreError(s.desc.Name, err)
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("create commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("create success")
	return s.desc.Response(e), nil
}

func (s *Service[E]) Update(ctx context.Context, id uint, in map[string]any) (any, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update requested", zap.Uint("id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error("update begin tx failed", zap.Error(tx.Error))
		return nil, tx.Error
	}
	defer tx.Rollback()

	qtx := s.store.WithTx(tx)
	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return nil, mapStoreError(s.desc.Name, err)
	}

	dec, ferrs := forms.Decode(s.desc.Fields, in)
	if s.desc.Validate != nil {
		extra, verr := s.desc.Validate(ctx, tx, dec, id)
		if verr != nil {
			log.Error("update validation query failed", zap.Error(verr))
			return nil, verr
		}
		ferrs = append(ferrs, extra...)
	}
	if len(ferrs) > 0 {
		log.Warn("update validation failed",
			zap.Uint("id", id),
			zap.Int("field_errors", len(ferrs)),
		)
		return nil, validationError(ferrs)
	}

	if err := s.desc.Apply(dec, e); err != nil {
		log.Error("update apply failed", zap.Error(err))
		return nil, err
	}

	if err := qtx.Update(ctx, e); err != nil {
		log.Error("update persist failed", zap.Uint("id", id), zap.Error(err))
		return nil, mapStoreError(s.desc.Name, err)
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("update commit failed", zap.Error(err))
		return nil, err
	}

	log.Info("update success", zap.Uint("id", id))
	return s.desc.Response(e), nil
}

// Delete removes the row and runs the descriptor's cascade routine in
// one transaction, so a crash mid-cascade cannot leave dependents
// half-deleted.
func (s *Service[E]) Delete(ctx context.Context, id uint) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete requested", zap.Uint("id", id))

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		log.Error("delete begin tx failed", zap.Error(tx.Error))
		return tx.Error
	}
	defer tx.Rollback()

	qtx := s.store.WithTx(tx)
	e, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapStoreError(s.desc.Name, err)
	}

	if s.desc.BeforeDelete != nil {
		if err := s.desc.BeforeDelete(ctx, tx, e); err != nil {
			log.Error("delete cascade failed", zap.Uint("id", id), zap.Error(err))
			return err
		}
	}

	if err := qtx.Delete(ctx, id); err != nil {
		log.Error("delete persist failed", zap.Uint("id", id), zap.Error(err))
		return mapStoreError(s.desc.Name, err)
	}

	if err := tx.Commit().Error; err != nil {
		log.Error("delete commit failed", zap.Error(err))
		return err
	}

	log.Info("delete success", zap.Uint("id", id))
	return nil
}
