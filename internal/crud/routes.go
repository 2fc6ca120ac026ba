package crud

import (
	"staffdesk/internal/middleware"
	"staffdesk/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the uniform entity surface:
//
//	GET  /{segment}/            list
//	GET  /{segment}/create/     create form
//	POST /{segment}/create/     create
//	GET  /{segment}/:id/edit/   edit form
//	POST /{segment}/:id/edit/   update
//	GET  /{segment}/:id/delete/ delete confirmation
//	POST /{segment}/:id/delete/ delete
//
// Every route requires an active session; capabilities are checked per
// operation against the resource name.
func RegisterRoutes(
	r *gin.RouterGroup,
	segment, resource string,
	handler *Handler,
	sessions *session.Manager,
	authorizer middleware.Authorizer,
	logger *zap.Logger,
) {
	g := r.Group("/" + segment)
	g.Use(middleware.SessionAuth(sessions))
	g.Use(middleware.ContextLogger(logger))
	{
		g.GET("/",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authorizer, resource, "read"),
			handler.List,
		)

		g.GET("/create/",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authorizer, resource, "read"),
			handler.CreateForm,
		)

		g.POST("/create/",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authorizer, resource, "create"),
			handler.Create,
		)

		g.GET("/:id/edit/",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authorizer, resource, "read"),
			handler.EditForm,
		)

		g.POST("/:id/edit/",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(authorizer, resource, "update"),
			handler.Update,
		)

		g.GET("/:id/delete/",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(authorizer, resource, "read"),
			handler.ConfirmDelete,
		)

		g.POST("/:id/delete/",
			middleware.RateLimitByUser(0.2, 1),
			middleware.Authorize(authorizer, resource, "delete"),
			handler.Delete,
		)
	}
}
