package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/infrastructure/permission"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
)

type CompanyRouteConfig struct {
	CompanyHandler       *handlers.CompanyHandler
	UserHandler          *handlers.UserHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupCompanyRoutes configures tenant and user administration.
func SetupCompanyRoutes(engine *gin.Engine, cfg *CompanyRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	companies := engine.Group("/companies")
	companies.Use(cfg.AuthMiddleware.RequireAuth())
	{
		companies.POST("", perm(permission.ResourceCompany, permission.ActionCreate), cfg.CompanyHandler.Create)
		companies.GET("", perm(permission.ResourceCompany, permission.ActionRead), cfg.CompanyHandler.List)
		companies.GET("/:id", perm(permission.ResourceCompany, permission.ActionRead), cfg.CompanyHandler.Get)
	}

	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.POST("", perm(permission.ResourceUser, permission.ActionCreate), cfg.UserHandler.Create)
		users.GET("", perm(permission.ResourceUser, permission.ActionRead), cfg.UserHandler.List)
	}
}
