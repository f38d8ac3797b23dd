package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/infrastructure/permission"
	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
)

type NotificationRouteConfig struct {
	NotificationHandler  *handlers.NotificationHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupNotificationRoutes(engine *gin.Engine, cfg *NotificationRouteConfig) {
	perm := cfg.PermissionMiddleware.RequirePermission

	notifications := engine.Group("/notifications")
	notifications.Use(cfg.AuthMiddleware.RequireAuth())
	{
		notifications.GET("", perm(permission.ResourceNotification, permission.ActionRead), cfg.NotificationHandler.List)
		notifications.GET("/unread-count", perm(permission.ResourceNotification, permission.ActionRead), cfg.NotificationHandler.UnreadCount)
		notifications.PATCH("/read-all", perm(permission.ResourceNotification, permission.ActionUpdate), cfg.NotificationHandler.MarkAllRead)
		notifications.PATCH("/:id/read", perm(permission.ResourceNotification, permission.ActionUpdate), cfg.NotificationHandler.MarkRead)
		notifications.DELETE("/:id", perm(permission.ResourceNotification, permission.ActionDelete), cfg.NotificationHandler.Delete)
	}
}
