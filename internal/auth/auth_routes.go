package auth

import (
	"staffdesk/internal/authz"
	"staffdesk/internal/middleware"
	"staffdesk/internal/session"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	sessions *session.Manager,
	authorizer middleware.Authorizer,
) {
	r.GET("/login", middleware.RateLimitByIP(2, 10), handler.LoginForm)
	r.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)

	r.POST("/logout",
		middleware.SessionAuth(sessions),
		middleware.RateLimitByUser(2, 5),
		handler.Logout,
	)

	r.GET("/me",
		middleware.SessionAuth(sessions),
		middleware.RateLimitByUser(2, 5),
		handler.Me,
	)

	r.GET("/admin_dashboard/",
		middleware.SessionAuth(sessions),
		middleware.RateLimitByUser(3, 10),
		middleware.Authorize(authorizer, authz.ResourceAdminDashboard, "read"),
		handler.AdminDashboard,
	)

	r.GET("/employee_dashboard/",
		middleware.SessionAuth(sessions),
		middleware.RateLimitByUser(3, 10),
		middleware.Authorize(authorizer, authz.ResourceEmployeeDashboard, "read"),
		handler.EmployeeDashboard,
	)
}
