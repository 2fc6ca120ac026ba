package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffdesk/internal/middleware"
	"staffdesk/internal/session"
	"staffdesk/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthedRouter(t *testing.T) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	manager := session.NewManager(session.NewMemoryStore(), 30*time.Minute)

	r := gin.New()
	r.GET("/protected", middleware.SessionAuth(manager), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"employee_id": middleware.EmployeeID(c),
			"role":        c.GetString("role"),
		})
	})
	return r, manager
}

func TestSessionAuth(t *testing.T) {
	t.Run("cookie session passes and loads identity", func(t *testing.T) {
		r, manager := newAuthedRouter(t)
		sess, err := manager.Issue(context.Background(), 7, "a@example.com", "staff")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sess.Token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"employee_id":7`)
		assert.Contains(t, w.Body.String(), `"role":"staff"`)
	})

	t.Run("bearer token works for non-browser clients", func(t *testing.T) {
		r, manager := newAuthedRouter(t)
		sess, err := manager.Issue(context.Background(), 7, "a@example.com", "staff")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+sess.Token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing session is 401 and points at login", func(t *testing.T) {
		r, _ := newAuthedRouter(t)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, apperror.ErrUnauthorized.HTTPStatus, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Contains(t, w.Body.String(), apperror.ErrUnauthorized.Code)
		assert.Contains(t, w.Body.String(), apperror.ErrUnauthorized.Message)
	})

	t.Run("terminated session is 401", func(t *testing.T) {
		r, manager := newAuthedRouter(t)
		sess, err := manager.Issue(context.Background(), 7, "a@example.com", "staff")
		require.NoError(t, err)
		require.NoError(t, manager.Terminate(context.Background(), sess.Token))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: sess.Token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type allowList struct {
	allowed map[string]bool
}

func (a allowList) Authorize(role, resource, action string) (bool, error) {
	return a.allowed[role+":"+resource+":"+action], nil
}

func TestAuthorize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	authorizer := allowList{allowed: map[string]bool{
		"super_admin:dashboard:admin:read": true,
	}}

	newRouter := func(role string) *gin.Engine {
		r := gin.New()
		r.GET("/admin",
			func(c *gin.Context) { c.Set("role", role) },
			middleware.Authorize(authorizer, "dashboard:admin", "read"),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		return r
	}

	t.Run("allowed role passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter("super_admin").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("denied role gets the shared forbidden error", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter("staff").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, apperror.ErrForbidden.HTTPStatus, w.Code)
		assert.Contains(t, w.Body.String(), apperror.ErrForbidden.Code)
		assert.Contains(t, w.Body.String(), apperror.ErrForbidden.Message)
		assert.Contains(t, w.Body.String(), "dashboard:admin:read")
	})

	t.Run("no role at all gets 401", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter("").ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
