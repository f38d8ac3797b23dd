package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/prism-finance/prism/internal/infrastructure/config"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
	"github.com/prism-finance/prism/internal/interfaces/http/routes"
	"github.com/prism-finance/prism/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	c, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{Container: c}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	maxUpload := int64(r.cfg.Server.MaxUploadMB) << 20
	if maxUpload > 0 {
		r.engine.MaxMultipartMemory = maxUpload
	}

	r.engine.GET("/health", r.hdlrs.health.HealthCheck)
	r.engine.GET("/version", r.hdlrs.health.Version)

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:    r.hdlrs.auth,
		AuthMiddleware: r.authMiddleware,
		LoginLimiter:   r.loginLimiter,
	})

	routes.SetupCompanyRoutes(r.engine, &routes.CompanyRouteConfig{
		CompanyHandler:       r.hdlrs.company,
		UserHandler:          r.hdlrs.user,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupSupplierRoutes(r.engine, &routes.SupplierRouteConfig{
		SupplierHandler:      r.hdlrs.supplier,
		DocumentHandler:      r.hdlrs.document,
		ConditionsHandler:    r.hdlrs.conditions,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupTemplateRoutes(r.engine, &routes.TemplateRouteConfig{
		TemplateHandler:      r.hdlrs.template,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupContractRoutes(r.engine, &routes.ContractRouteConfig{
		ContractHandler:      r.hdlrs.contract,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupPurchaseOrderRoutes(r.engine, &routes.PurchaseOrderRouteConfig{
		PurchaseOrderHandler: r.hdlrs.purchaseOrder,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupInvoiceRoutes(r.engine, &routes.InvoiceRouteConfig{
		InvoiceHandler:       r.hdlrs.invoice,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupConditionsRoutes(r.engine, &routes.ConditionsRouteConfig{
		ConditionsHandler:    r.hdlrs.conditions,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupNotificationRoutes(r.engine, &routes.NotificationRouteConfig{
		NotificationHandler:  r.hdlrs.notification,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

