package crud_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"staffdesk/internal/crud"
	"staffdesk/internal/forms"
	"staffdesk/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrchestrator struct {
	fields []forms.Field
	list   func(ctx context.Context) ([]any, error)
	get    func(ctx context.Context, id uint) (any, error)
	create func(ctx context.Context, in map[string]any) (any, error)
	update func(ctx context.Context, id uint, in map[string]any) (any, error)
	delete func(ctx context.Context, id uint) error
}

func (f *fakeOrchestrator) Fields() []forms.Field { return f.fields }
func (f *fakeOrchestrator) List(ctx context.Context) ([]any, error) {
	return f.list(ctx)
}
func (f *fakeOrchestrator) Get(ctx context.Context, id uint) (any, error) {
	return f.get(ctx, id)
}
func (f *fakeOrchestrator) Create(ctx context.Context, in map[string]any) (any, error) {
	return f.create(ctx, in)
}
func (f *fakeOrchestrator) Update(ctx context.Context, id uint, in map[string]any) (any, error) {
	return f.update(ctx, id, in)
}
func (f *fakeOrchestrator) Delete(ctx context.Context, id uint) error {
	return f.delete(ctx, id)
}

func setupRouter(service crud.Orchestrator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := crud.NewHandler(service, "inventory_item", "/inventory/")

	g := r.Group("/inventory")
	g.GET("/", handler.List)
	g.GET("/create/", handler.CreateForm)
	g.POST("/create/", handler.Create)
	g.GET("/:id/edit/", handler.EditForm)
	g.POST("/:id/edit/", handler.Update)
	g.GET("/:id/delete/", handler.ConfirmDelete)
	g.POST("/:id/delete/", handler.Delete)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHandler_List(t *testing.T) {
	service := &fakeOrchestrator{
		list: func(ctx context.Context) ([]any, error) {
			return []any{map[string]any{"id": 1, "name": "Stapler"}}, nil
		},
	}
	router := setupRouter(service)

	w := doJSON(router, http.MethodGet, "/inventory/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeEnvelope(t, w)
	assert.Equal(t, true, res["ok"])
	assert.Len(t, res["data"], 1)
}

func TestHandler_CreateForm(t *testing.T) {
	service := &fakeOrchestrator{
		fields: forms.Describe([]forms.Field{
			{Name: "name", Kind: forms.Text, Required: true},
		}),
	}
	router := setupRouter(service)

	w := doJSON(router, http.MethodGet, "/inventory/create/", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeEnvelope(t, w)
	data := res["data"].(map[string]any)
	assert.Len(t, data["fields"], 1)
}

func TestHandler_Create(t *testing.T) {
	t.Run("success returns 201 and a redirect", func(t *testing.T) {
		service := &fakeOrchestrator{
			create: func(ctx context.Context, in map[string]any) (any, error) {
				return map[string]any{"id": 5, "name": in["name"]}, nil
			},
		}
		router := setupRouter(service)

		w := doJSON(router, http.MethodPost, "/inventory/create/", map[string]any{"name": "Stapler"})

		assert.Equal(t, http.StatusCreated, w.Code)
		res := decodeEnvelope(t, w)
		data := res["data"].(map[string]any)
		assert.Equal(t, "/inventory/", data["redirect"])
	})

	t.Run("validation failure returns 422 with field details", func(t *testing.T) {
		service := &fakeOrchestrator{
			create: func(ctx context.Context, in map[string]any) (any, error) {
				return nil, apperror.Validation(forms.Errors{
					{Field: "name", Code: apperror.CodeMissingField, Message: "Name is required"},
					{Field: "price", Code: apperror.CodeInvalidFieldValue, Message: "Price must be a number"},
				})
			},
		}
		router := setupRouter(service)

		w := doJSON(router, http.MethodPost, "/inventory/create/", map[string]any{})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		res := decodeEnvelope(t, w)
		errObj := res["error"].(map[string]any)
		assert.Equal(t, apperror.CodeValidationFailed, errObj["code"])
		assert.Len(t, errObj["details"], 2)
	})

	t.Run("non-object body returns 400", func(t *testing.T) {
		service := &fakeOrchestrator{}
		router := setupRouter(service)

		req := httptest.NewRequest(http.MethodPost, "/inventory/create/", bytes.NewBufferString("not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Update(t *testing.T) {
	t.Run("unparsable id is treated as not found", func(t *testing.T) {
		service := &fakeOrchestrator{}
		router := setupRouter(service)

		w := doJSON(router, http.MethodPost, "/inventory/abc/edit/", map[string]any{"name": "X"})

		assert.Equal(t, http.StatusNotFound, w.Code)
		res := decodeEnvelope(t, w)
		errObj := res["error"].(map[string]any)
		assert.Equal(t, apperror.CodeNotFound, errObj["code"])
	})

	t.Run("zero id is treated as not found", func(t *testing.T) {
		service := &fakeOrchestrator{}
		router := setupRouter(service)

		w := doJSON(router, http.MethodPost, "/inventory/0/edit/", map[string]any{"name": "X"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success echoes the updated row", func(t *testing.T) {
		service := &fakeOrchestrator{
			update: func(ctx context.Context, id uint, in map[string]any) (any, error) {
				assert.Equal(t, uint(7), id)
				return map[string]any{"id": 7, "name": in["name"]}, nil
			},
		}
		router := setupRouter(service)

		w := doJSON(router, http.MethodPost, "/inventory/7/edit/", map[string]any{"name": "Tape"})

		assert.Equal(t, http.StatusOK, w.Code)
		res := decodeEnvelope(t, w)
		data := res["data"].(map[string]any)
		assert.Equal(t, "/inventory/", data["redirect"])
	})
}

func TestHandler_Delete(t *testing.T) {
	t.Run("confirmation step returns the row untouched", func(t *testing.T) {
		deleted := false
		service := &fakeOrchestrator{
			get: func(ctx context.Context, id uint) (any, error) {
				return map[string]any{"id": 3, "name": "Stapler"}, nil
			},
			delete: func(ctx context.Context, id uint) error {
				deleted = true
				return nil
			},
		}
		router := setupRouter(service)

		w := doJSON(router, http.MethodGet, "/inventory/3/delete/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		res := decodeEnvelope(t, w)
		data := res["data"].(map[string]any)
		assert.Equal(t, true, data["confirm"])
		assert.False(t, deleted)
	})

	t.Run("post executes the delete", func(t *testing.T) {
		var got uint
		service := &fakeOrchestrator{
			delete: func(ctx context.Context, id uint) error {
				got = id
				return nil
			},
		}
		router := setupRouter(service)

		w := doJSON(router, http.MethodPost, "/inventory/3/delete/", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, uint(3), got)
	})

	t.Run("missing row surfaces as 404", func(t *testing.T) {
		service := &fakeOrchestrator{
			delete: func(ctx context.Context, id uint) error {
				return apperror.New(apperror.CodeNotFound, "Inventory Item not found", http.StatusNotFound)
			},
		}
		router := setupRouter(service)

		w := doJSON(router, http.MethodPost, "/inventory/99/delete/", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
