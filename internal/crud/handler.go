package crud

import (
	"net/http"
	"strconv"

	"staffdesk/internal/shared/apperror"
	"staffdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler serves the uniform four-operation HTTP surface for one entity.
// It is the same type for every entity; only the orchestrator and the
// list path it redirects back to differ.
type Handler struct {
	service  Orchestrator
	name     string
	listPath string
	logger   *zap.Logger
}

func NewHandler(service Orchestrator, name, listPath string, logger ...*zap.Logger) *Handler {
	l := zap.L().Named(name + ".handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named(name + ".handler")
	}
	return &Handler{
		service:  service,
		name:     name,
		listPath: listPath,
		logger:   l,
	}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// parseID treats unparsable identifiers the same as unknown ones: the
// resource does not resolve, so the caller sees 404 either way.
func (h *Handler) parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.writeServiceError(c, notFoundError(h.name))
		return 0, false
	}
	return uint(id), true
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	meta := response.NewPaginationMeta(int64(len(rows)), 1, len(rows))
	response.Success(c, http.StatusOK, rows, &meta)
}

// CreateForm returns the entity's field descriptors, the API analog of
// rendering an empty form.
func (h *Handler) CreateForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"fields": h.service.Fields(),
	}, nil)
}

func (h *Handler) Create(c *gin.Context) {
	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("create bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Request body must be a JSON object", err.Error())
		return
	}

	row, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"item":     row,
		"redirect": h.listPath,
	}, nil)
}

// EditForm returns the current row together with the field descriptors,
// so a client can pre-fill the edit form.
func (h *Handler) EditForm(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"item":   row,
		"fields": h.service.Fields(),
	}, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var in map[string]any
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Warn("update bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Request body must be a JSON object", err.Error())
		return
	}

	row, err := h.service.Update(c.Request.Context(), id, in)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"item":     row,
		"redirect": h.listPath,
	}, nil)
}

// ConfirmDelete is the first step of the two-step delete: it shows the
// row about to be removed without touching anything.
func (h *Handler) ConfirmDelete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	row, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"item":    row,
		"confirm": true,
	}, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"deleted":  true,
		"redirect": h.listPath,
	}, nil)
}
