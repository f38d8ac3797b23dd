package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/infrastructure/permission"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
)

type PurchaseOrderRouteConfig struct {
	PurchaseOrderHandler *handlers.PurchaseOrderHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPurchaseOrderRoutes configures purchase orders and their
// send, sign and cancel lifecycle.
func SetupPurchaseOrderRoutes(engine *gin.Engine, cfg *PurchaseOrderRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	orders := engine.Group("/purchase-orders")
	orders.Use(cfg.AuthMiddleware.RequireAuth())
	{
		orders.POST("", perm(permission.ResourcePurchaseOrder, permission.ActionCreate), cfg.PurchaseOrderHandler.Create)
		orders.GET("", perm(permission.ResourcePurchaseOrder, permission.ActionRead), cfg.PurchaseOrderHandler.List)

		orders.GET("/:id", perm(permission.ResourcePurchaseOrder, permission.ActionRead), cfg.PurchaseOrderHandler.Get)
		orders.PUT("/:id", perm(permission.ResourcePurchaseOrder, permission.ActionUpdate), cfg.PurchaseOrderHandler.Update)
		orders.POST("/:id/send", perm(permission.ResourcePurchaseOrder, permission.ActionSend), cfg.PurchaseOrderHandler.Send)
		orders.POST("/:id/sign", perm(permission.ResourcePurchaseOrder, permission.ActionSign), cfg.PurchaseOrderHandler.Sign)
		orders.POST("/:id/cancel", perm(permission.ResourcePurchaseOrder, permission.ActionCancel), cfg.PurchaseOrderHandler.Cancel)
	}
}
