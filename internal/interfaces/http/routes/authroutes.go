package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/interfaces/http/handlers"
	"github.com/prism-finance/prism/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	LoginLimiter   *middleware.RateLimiter // nil when Redis is disabled
}

// SetupAuthRoutes configures login and the current-identity endpoint.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if cfg.LoginLimiter != nil {
			auth.POST("/login", cfg.LoginLimiter.Limit(), cfg.AuthHandler.Login)
		} else {
			auth.POST("/login", cfg.AuthHandler.Login)
		}
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}
