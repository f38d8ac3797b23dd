package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/infrastructure/permission"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
)

type InvoiceRouteConfig struct {
	InvoiceHandler       *handlers.InvoiceHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupInvoiceRoutes(engine *gin.Engine, cfg *InvoiceRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	invoices := engine.Group("/invoices")
	invoices.Use(cfg.AuthMiddleware.RequireAuth())
	{
		invoices.POST("", perm(permission.ResourceInvoice, permission.ActionCreate), cfg.InvoiceHandler.Upload)
		invoices.GET("", perm(permission.ResourceInvoice, permission.ActionRead), cfg.InvoiceHandler.List)

		invoices.GET("/:id", perm(permission.ResourceInvoice, permission.ActionRead), cfg.InvoiceHandler.Get)
		invoices.GET("/:id/download", perm(permission.ResourceInvoice, permission.ActionRead), cfg.InvoiceHandler.Download)
		invoices.PUT("/:id/status", perm(permission.ResourceInvoice, permission.ActionReview), cfg.InvoiceHandler.UpdateStatus)
		invoices.DELETE("/:id", perm(permission.ResourceInvoice, permission.ActionDelete), cfg.InvoiceHandler.Delete)
	}
}
