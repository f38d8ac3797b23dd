package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/infrastructure/permission"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
)

type SupplierRouteConfig struct {
	SupplierHandler      *handlers.SupplierHandler
	DocumentHandler      *handlers.DocumentHandler
	ConditionsHandler    *handlers.ConditionsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupSupplierRoutes configures suppliers, their compliance documents and
// their acceptance of the general conditions.
func SetupSupplierRoutes(engine *gin.Engine, cfg *SupplierRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	suppliers := engine.Group("/suppliers")
	suppliers.Use(cfg.AuthMiddleware.RequireAuth())
	{
		suppliers.POST("", perm(permission.ResourceSupplier, permission.ActionCreate), cfg.SupplierHandler.Create)
		suppliers.GET("", perm(permission.ResourceSupplier, permission.ActionRead), cfg.SupplierHandler.List)
		suppliers.GET("/:id", perm(permission.ResourceSupplier, permission.ActionRead), cfg.SupplierHandler.Get)
		suppliers.PUT("/:id", perm(permission.ResourceSupplier, permission.ActionUpdate), cfg.SupplierHandler.Update)
		suppliers.GET("/:id/gc-status", perm(permission.ResourceGeneralConditions, permission.ActionRead), cfg.ConditionsHandler.AcceptanceStatus)
		suppliers.POST("/:id/accept-gc", perm(permission.ResourceGeneralConditions, permission.ActionAccept), cfg.ConditionsHandler.Accept)

		docs := suppliers.Group("/:id/documents")
		{
			docs.POST("", perm(permission.ResourceDocument, permission.ActionCreate), cfg.DocumentHandler.Upload)
			docs.GET("", perm(permission.ResourceDocument, permission.ActionRead), cfg.DocumentHandler.List)
			docs.GET("/:document_id", perm(permission.ResourceDocument, permission.ActionRead), cfg.DocumentHandler.Get)
			docs.GET("/:document_id/download", perm(permission.ResourceDocument, permission.ActionRead), cfg.DocumentHandler.Download)
			docs.PUT("/:document_id/status", perm(permission.ResourceDocument, permission.ActionReview), cfg.DocumentHandler.Review)
			docs.DELETE("/:document_id", perm(permission.ResourceDocument, permission.ActionDelete), cfg.DocumentHandler.Delete)
		}
	}
}
