package clockrecord

import (
	"context"
	"net/http"

	"staffdesk/internal/crud"
	"staffdesk/internal/middleware"
	"staffdesk/internal/session"
	"staffdesk/internal/shared/apperror"
	"staffdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository adds the joined listing backing the read-only work-hours
// view on top of the generic store.
type Repository struct {
	*crud.GormRepository[ClockRecord]
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		GormRepository: crud.NewRepository[ClockRecord](db),
		db:             db,
	}
}

func (r *Repository) FindAllWithEmployee(ctx context.Context) ([]ClockRecord, error) {
	var rows []ClockRecord
	err := r.db.WithContext(ctx).Preload("Employee").Find(&rows).Error
	return rows, err
}

// WorkHoursHandler serves GET /work_hours/, clock records annotated with
// employee names. Read-only; mutations go through the clock_records CRUD
// surface.
type WorkHoursHandler struct {
	repo   *Repository
	logger *zap.Logger
}

func NewWorkHoursHandler(repo *Repository, logger ...*zap.Logger) *WorkHoursHandler {
	l := zap.L().Named("clock_record.work_hours")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("clock_record.work_hours")
	}
	return &WorkHoursHandler{repo: repo, logger: l}
}

func (h *WorkHoursHandler) List(c *gin.Context) {
	rows, err := h.repo.FindAllWithEmployee(c.Request.Context())
	if err != nil {
		h.logger.Error("list work hours failed", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	out := make([]Response, len(rows))
	for i := range rows {
		out[i] = ToResponse(&rows[i])
	}

	meta := response.NewPaginationMeta(int64(len(out)), 1, len(out))
	response.Success(c, http.StatusOK, out, &meta)
}

func RegisterWorkHoursRoutes(
	r *gin.RouterGroup,
	handler *WorkHoursHandler,
	sessions *session.Manager,
	authorizer middleware.Authorizer,
	logger *zap.Logger,
) {
	g := r.Group("/work_hours")
	g.Use(middleware.SessionAuth(sessions))
	g.Use(middleware.ContextLogger(logger))
	g.GET("/",
		middleware.RateLimitByUser(3, 10),
		middleware.Authorize(authorizer, "clock_record", "read"),
		handler.List,
	)
}
