package middleware

import (
	"errors"
	"strings"

	"staffdesk/internal/session"
	"staffdesk/internal/shared/apperror"
	"staffdesk/internal/shared/contextutil"
	"staffdesk/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "session_id"

// SessionToken pulls the session token from the cookie or, for non-browser
// clients, a bearer Authorization header.
func SessionToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(authHeader, "Bearer "); found {
		return token
	}
	return ""
}

// SessionAuth resolves the caller's session and loads identity and role
// into the request context. Requests without an active session are turned
// away with 401 and pointed back at the login entry point.
func SessionAuth(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := SessionToken(c)
		if token == "" {
			unauthorized(c)
			return
		}

		s, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				httpErr := apperror.ToHTTP(err)
				response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
				c.Abort()
				return
			}
			unauthorized(c)
			return
		}

		c.Set("employee_id", s.EmployeeID)
		c.Set("email", s.Email)
		c.Set("role", s.Role)
		c.Set("session_token", s.Token)

		ctx := contextutil.WithEmployeeID(c.Request.Context(), s.EmployeeID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func unauthorized(c *gin.Context) {
	c.Header("Location", "/login")
	e := apperror.ErrUnauthorized
	response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
	c.Abort()
}

// EmployeeID returns the authenticated employee's identifier, zero when
// the auth middleware did not run.
func EmployeeID(c *gin.Context) uint {
	if id, ok := c.Get("employee_id"); ok {
		if v, ok := id.(uint); ok {
			return v
		}
	}
	return 0
}
