package auth

import (
	"net/http"

	"staffdesk/internal/bootstrap"
	"staffdesk/internal/forms"
	"staffdesk/internal/middleware"
	"staffdesk/internal/shared/apperror"
	"staffdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// loginFields drives the GET /login form payload, same shape the CRUD
// form endpoints return.
var loginFields = []forms.Field{
	{Name: "email", Kind: forms.Email, Required: true},
	{Name: "password", Kind: forms.Text, Required: true},
}

type Handler struct {
	service      Service
	audit        bootstrap.AuditLogger
	secureCookie bool
	logger       *zap.Logger
}

func NewHandler(s Service, audit bootstrap.AuditLogger, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{
		service:      s,
		audit:        audit,
		secureCookie: secureCookie,
		logger:       l,
	}
}

// LoginForm describes the login fields for clients rendering the form.
func (ctrl *Handler) LoginForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"fields": forms.Describe(loginFields)}, nil)
}

func (ctrl *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ctrl.logger.Debug("login payload malformed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Email and password are required", err.Error())
		return
	}

	sess, userResp, err := ctrl.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// One response for every failure mode: no account enumeration.
		response.Error(c, http.StatusUnauthorized, apperror.CodeInvalidCredentials,
			"Invalid email or password", nil)
		return
	}

	// Session cookie without Max-Age: the session manager slides expiry on
	// every request, so the cookie must outlive the initial TTL. The server
	// side decides when the session is dead.
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    sess.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   ctrl.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	ctrl.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "LOGIN",
		Message: "Employee logged in",
		Meta: map[string]any{
			"employee_id": userResp.ID,
			"role":        userResp.Role,
		},
	})

	response.Success(c, http.StatusOK, userResp, nil)
}

func (ctrl *Handler) Logout(c *gin.Context) {
	token := middleware.SessionToken(c)
	if err := ctrl.service.Logout(c.Request.Context(), token); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	ctrl.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "LOGOUT",
		Message: "Employee logged out",
		Meta: map[string]any{
			"employee_id": middleware.EmployeeID(c),
		},
	})

	response.Success(c, http.StatusOK, gin.H{"redirect": "/login"}, nil)
}

func (ctrl *Handler) Me(c *gin.Context) {
	id := middleware.EmployeeID(c)
	if id == 0 {
		e := apperror.ErrUnauthorized
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	userResp, err := ctrl.service.Me(c.Request.Context(), id)
	if err != nil {
		e := apperror.ErrUnauthorized
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, userResp, nil)
}

// AdminDashboard is gated on the dashboard:admin capability upstream.
func (ctrl *Handler) AdminDashboard(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"dashboard": "admin",
		"email":     c.GetString("email"),
		"role":      c.GetString("role"),
		"sections": []string{
			"/employees/",
			"/inventory/",
			"/tasks/",
			"/clock_records/",
			"/holiday_requests/",
			"/work_hours/",
		},
	}, nil)
}

func (ctrl *Handler) EmployeeDashboard(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"dashboard": "employee",
		"email":     c.GetString("email"),
		"role":      c.GetString("role"),
		"sections": []string{
			"/tasks/",
			"/clock_records/",
			"/holiday_requests/",
		},
	}, nil)
}
