package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier map[string]string

func (s stubVerifier) Verify(token string) (string, error) {
	if userID, ok := s[token]; ok {
		return userID, nil
	}
	return "", errors.New("bad token")
}

type stubResolver map[string]*authorization.Identity

func (s stubResolver) ResolveIdentity(_ context.Context, userID string) (*authorization.Identity, error) {
	if userID == "usr_boom" {
		return nil, errors.New("db down")
	}
	return s[userID], nil
}

type stubChecker map[string]bool

func (s stubChecker) Enforce(role authorization.UserRole, resource, action string) (bool, error) {
	return s[role.String()+":"+resource+":"+action], nil
}

func newAuthRouter() *gin.Engine {
	verifier := stubVerifier{"good": "usr_1", "disabled": "usr_2", "boom": "usr_boom"}
	resolver := stubResolver{"usr_1": {UserID: "usr_1", Role: authorization.RoleSupplier, CompanyID: "cmp_1", SupplierID: "sup_1"}}
	auth := NewAuthMiddleware(verifier, resolver, logger.NewDiscard())
	perms := NewPermissionMiddleware(stubChecker{"supplier:contract:sign": true}, logger.NewDiscard())

	r := gin.New()
	r.Use(auth.RequireAuth())
	r.GET("/me", func(c *gin.Context) {
		identity := GetIdentity(c)
		fromCtx := authorization.FromContext(c.Request.Context())
		if identity == nil || fromCtx != identity {
			c.Status(http.StatusTeapot)
			return
		}
		c.String(http.StatusOK, identity.UserID)
	})
	r.POST("/sign", perms.RequirePermission("contract", "sign"), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/generate", perms.RequirePermission("contract", "generate"), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newAuthRouter()

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"invalid token", "Bearer nope", http.StatusUnauthorized},
		{"disabled user", "Bearer disabled", http.StatusUnauthorized},
		{"resolver failure", "Bearer boom", http.StatusInternalServerError},
		{"valid", "Bearer good", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "usr_1", w.Body.String())
			}
		})
	}
}

func TestPermissionMiddleware(t *testing.T) {
	r := newAuthRouter()

	for path, want := range map[string]int{"/sign": http.StatusOK, "/generate": http.StatusForbidden} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, want, w.Code, path)
	}
}

type fakeCounter struct {
	counts  map[string]int64
	expires int
	err     error
}

func (f *fakeCounter) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx)
	if f.err != nil {
		cmd.SetErr(f.err)
		return cmd
	}
	f.counts[key]++
	cmd.SetVal(f.counts[key])
	return cmd
}

func (f *fakeCounter) Expire(ctx context.Context, key string, _ time.Duration) *redis.BoolCmd {
	f.expires++
	cmd := redis.NewBoolCmd(ctx)
	cmd.SetVal(true)
	return cmd
}

func TestRateLimiter(t *testing.T) {
	counter := &fakeCounter{counts: map[string]int64{}}
	rl := NewRateLimiter(counter, "login", 2, time.Hour, logger.NewDiscard())

	r := gin.New()
	r.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, 1, counter.expires)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	rl := NewRateLimiter(&fakeCounter{err: errors.New("no redis")}, "login", 1, time.Minute, logger.NewDiscard())

	r := gin.New()
	r.POST("/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"https://app.prism.test"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.prism.test")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://app.prism.test", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.test")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(RequestID(), Recovery(logger.NewDiscard()))
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
