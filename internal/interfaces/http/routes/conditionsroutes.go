package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/infrastructure/permission"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
)

type ConditionsRouteConfig struct {
	ConditionsHandler    *handlers.ConditionsHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupConditionsRoutes configures the general conditions versions. The
// supplier side of acceptance lives under /suppliers/:id.
func SetupConditionsRoutes(engine *gin.Engine, cfg *ConditionsRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	gc := engine.Group("/general-conditions")
	gc.Use(cfg.AuthMiddleware.RequireAuth())
	{
		gc.POST("", perm(permission.ResourceGeneralConditions, permission.ActionCreate), cfg.ConditionsHandler.Create)
		gc.GET("", perm(permission.ResourceGeneralConditions, permission.ActionRead), cfg.ConditionsHandler.List)
		gc.GET("/active", perm(permission.ResourceGeneralConditions, permission.ActionRead), cfg.ConditionsHandler.Active)

		gc.GET("/:id", perm(permission.ResourceGeneralConditions, permission.ActionRead), cfg.ConditionsHandler.Get)
		gc.GET("/:id/html", perm(permission.ResourceGeneralConditions, permission.ActionRead), cfg.ConditionsHandler.HTML)
		gc.GET("/:id/acceptances", perm(permission.ResourceGeneralConditions, permission.ActionUpdate), cfg.ConditionsHandler.Acceptances)
		gc.PUT("/:id", perm(permission.ResourceGeneralConditions, permission.ActionUpdate), cfg.ConditionsHandler.Update)
		gc.DELETE("/:id", perm(permission.ResourceGeneralConditions, permission.ActionDelete), cfg.ConditionsHandler.Delete)
	}
}
