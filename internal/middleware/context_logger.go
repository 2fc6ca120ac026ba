package middleware

import (
	"staffdesk/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger decorates the request context with a scoped zap logger
// carrying tracing metadata, so services and repos can log without
// knowing about gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		employeeID := EmployeeID(c)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.Uint("employee_id", employeeID),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
