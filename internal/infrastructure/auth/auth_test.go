package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/prism-finance/prism/internal/shared/authorization"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 0)

	token, expiresIn, err := svc.Generate("usr_abc", authorization.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(24*3600), expiresIn)

	userID, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "usr_abc", userID)
}

func TestJWTService_Rejects(t *testing.T) {
	svc := NewJWTService("test-secret", 1)
	token, _, err := svc.Generate("usr_abc", authorization.RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("other-secret", 1).Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "usr_abc",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBcryptPasswordHasher(t *testing.T) {
	h := NewBcryptPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)
	assert.NoError(t, h.Verify("correct horse", hash))
	assert.ErrorIs(t, h.Verify("wrong", hash), ErrPasswordMismatch)
	assert.ErrorIs(t, h.Verify("x", "not-a-hash"), ErrPasswordMismatch)
}
