package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"staffdesk/internal/auth"
	autherrors "staffdesk/internal/auth/errors"
	"staffdesk/internal/bootstrap"
	"staffdesk/internal/employee"
	"staffdesk/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	login  func(ctx context.Context, email, password string) (session.Session, auth.LoginResponse, error)
	logout func(ctx context.Context, token string) error
	me     func(ctx context.Context, employeeID uint) (employee.Response, error)
}

func (f *fakeService) Login(ctx context.Context, email, password string) (session.Session, auth.LoginResponse, error) {
	return f.login(ctx, email, password)
}

func (f *fakeService) Logout(ctx context.Context, token string) error {
	return f.logout(ctx, token)
}

func (f *fakeService) Me(ctx context.Context, employeeID uint) (employee.Response, error) {
	return f.me(ctx, employeeID)
}

type nopAudit struct{}

func (nopAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {}

func newHandler(service auth.Service) *auth.Handler {
	return auth.NewHandler(service, nopAudit{}, false)
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success sets the session cookie", func(t *testing.T) {
		service := &fakeService{
			login: func(ctx context.Context, email, password string) (session.Session, auth.LoginResponse, error) {
				return session.Session{
						Token:     "tok-abc",
						ExpiresAt: time.Now().Add(30 * time.Minute),
					}, auth.LoginResponse{
						ID:       4,
						Email:    email,
						Role:     employee.RoleStaff,
						Redirect: auth.EmployeeDashboardPath,
					}, nil
			},
		}
		r := gin.New()
		r.POST("/login", newHandler(service).Login)

		w := postJSON(r, "/login", map[string]string{
			"email":    "jordan@example.com",
			"password": "password123",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "session_id", cookies[0].Name)
		assert.Equal(t, "tok-abc", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		// No Max-Age: the server-side sliding window decides when the
		// session dies, not a fixed cookie lifetime stamped at login.
		assert.Zero(t, cookies[0].MaxAge)

		var res map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]any)
		assert.Equal(t, auth.EmployeeDashboardPath, data["redirect"])
	})

	t.Run("bad credentials return one uniform response", func(t *testing.T) {
		service := &fakeService{
			login: func(ctx context.Context, email, password string) (session.Session, auth.LoginResponse, error) {
				return session.Session{}, auth.LoginResponse{}, autherrors.ErrInvalidCredentials
			},
		}
		r := gin.New()
		r.POST("/login", newHandler(service).Login)

		first := postJSON(r, "/login", map[string]string{"email": "nobody@example.com", "password": "x"})
		second := postJSON(r, "/login", map[string]string{"email": "jordan@example.com", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, first.Code)
		assert.Equal(t, http.StatusUnauthorized, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Empty(t, first.Result().Cookies())
	})

	t.Run("malformed body returns 400 before the service runs", func(t *testing.T) {
		called := false
		service := &fakeService{
			login: func(ctx context.Context, email, password string) (session.Session, auth.LoginResponse, error) {
				called = true
				return session.Session{}, auth.LoginResponse{}, nil
			},
		}
		r := gin.New()
		r.POST("/login", newHandler(service).Login)

		w := postJSON(r, "/login", map[string]string{"email": "not-an-email"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called)
	})
}

func TestHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var terminated string
	service := &fakeService{
		logout: func(ctx context.Context, token string) error {
			terminated = token
			return nil
		},
	}
	r := gin.New()
	r.POST("/logout", newHandler(service).Logout)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "tok-abc"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok-abc", terminated)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session_id", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := &fakeService{
		me: func(ctx context.Context, employeeID uint) (employee.Response, error) {
			assert.Equal(t, uint(4), employeeID)
			return employee.Response{ID: 4, Email: "jordan@example.com"}, nil
		},
	}

	r := gin.New()
	r.GET("/me", func(c *gin.Context) {
		c.Set("employee_id", uint(4))
	}, newHandler(service).Me)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	data := res["data"].(map[string]any)
	assert.Equal(t, "jordan@example.com", data["email"])
}

func TestHandler_MeWithoutIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)

	service := &fakeService{}
	r := gin.New()
	r.GET("/me", newHandler(service).Me)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
