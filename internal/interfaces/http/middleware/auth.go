package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/constants"
	"github.com/prism-finance/prism/internal/shared/logger"
	"github.com/prism-finance/prism/internal/shared/utils"
)

// TokenVerifier returns the user ID carried by a valid access token.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// IdentityResolver loads the caller. A nil identity means the user is
// missing or disabled.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, userID string) (*authorization.Identity, error)
}

type AuthMiddleware struct {
	verifier TokenVerifier
	resolver IdentityResolver
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, resolver IdentityResolver, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		resolver: resolver,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		userID, err := m.verifier.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		identity, err := m.resolver.ResolveIdentity(c.Request.Context(), userID)
		if err != nil {
			m.logger.Errorw("failed to resolve identity", "user_id", userID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if identity == nil {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not found or disabled")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyIdentity, identity)
		c.Set(constants.ContextKeyUserID, identity.UserID)
		c.Set(constants.ContextKeyUserRole, identity.Role.String())
		c.Request = c.Request.WithContext(authorization.WithIdentity(c.Request.Context(), identity))

		c.Next()
	}
}

// GetIdentity returns the identity stored by RequireAuth, or nil.
func GetIdentity(c *gin.Context) *authorization.Identity {
	v, ok := c.Get(constants.ContextKeyIdentity)
	if !ok {
		return nil
	}
	identity, _ := v.(*authorization.Identity)
	return identity
}
