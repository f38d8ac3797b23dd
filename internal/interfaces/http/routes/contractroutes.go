package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/infrastructure/permission"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
)

type ContractRouteConfig struct {
	ContractHandler      *handlers.ContractHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupContractRoutes configures generation, viewing and the signing flow.
// Which side a caller may sign is decided by the contract service.
func SetupContractRoutes(engine *gin.Engine, cfg *ContractRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	contracts := engine.Group("/contracts")
	contracts.Use(cfg.AuthMiddleware.RequireAuth())
	{
		contracts.POST("/generate", perm(permission.ResourceContract, permission.ActionGenerate), cfg.ContractHandler.Generate)
		contracts.GET("", perm(permission.ResourceContract, permission.ActionRead), cfg.ContractHandler.List)

		contracts.GET("/:id", perm(permission.ResourceContract, permission.ActionRead), cfg.ContractHandler.Get)
		contracts.GET("/:id/html", perm(permission.ResourceContract, permission.ActionRead), cfg.ContractHandler.HTML)
		contracts.GET("/:id/file", perm(permission.ResourceContract, permission.ActionRead), cfg.ContractHandler.File)
		contracts.POST("/:id/sign-supplier", perm(permission.ResourceContract, permission.ActionSign), cfg.ContractHandler.SignSupplier)
		contracts.POST("/:id/sign-admin", perm(permission.ResourceContract, permission.ActionSign), cfg.ContractHandler.SignAdmin)
		contracts.POST("/:id/cancel", perm(permission.ResourceContract, permission.ActionCancel), cfg.ContractHandler.Cancel)
	}
}
