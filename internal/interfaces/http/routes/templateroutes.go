package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/infrastructure/permission"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
)

type TemplateRouteConfig struct {
	TemplateHandler      *handlers.TemplateHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTemplateRoutes(engine *gin.Engine, cfg *TemplateRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	templates := engine.Group("/templates")
	templates.Use(cfg.AuthMiddleware.RequireAuth())
	{
		templates.POST("", perm(permission.ResourceTemplate, permission.ActionCreate), cfg.TemplateHandler.Upload)
		templates.GET("", perm(permission.ResourceTemplate, permission.ActionRead), cfg.TemplateHandler.List)

		// Named sub-resources before the bare /:id routes
		templates.GET("/:id/download", perm(permission.ResourceTemplate, permission.ActionRead), cfg.TemplateHandler.Download)

		templates.GET("/:id", perm(permission.ResourceTemplate, permission.ActionRead), cfg.TemplateHandler.Get)
		templates.PUT("/:id", perm(permission.ResourceTemplate, permission.ActionUpdate), cfg.TemplateHandler.Update)
		templates.DELETE("/:id", perm(permission.ResourceTemplate, permission.ActionDelete), cfg.TemplateHandler.Delete)
	}
}
