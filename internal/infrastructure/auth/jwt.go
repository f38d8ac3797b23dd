package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/prism-finance/prism/internal/shared/authorization"
	"github.com/prism-finance/prism/internal/shared/biztime"
)

const defaultAccessExpHours = 24

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the user id in the standard subject claim. Role is
// informational; authorization always reloads the user.
type Claims struct {
	Role authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret         []byte
	accessExpHours int
}

func NewJWTService(secret string, accessExpHours int) *JWTService {
	if accessExpHours <= 0 {
		accessExpHours = defaultAccessExpHours
	}
	return &JWTService{
		secret:         []byte(secret),
		accessExpHours: accessExpHours,
	}
}

// Generate signs an HS256 access token for userID and returns it with its
// lifetime in seconds.
func (s *JWTService) Generate(userID string, role authorization.UserRole) (string, int64, error) {
	now := biztime.NowUTC()
	ttl := time.Duration(s.accessExpHours) * time.Hour
	exp := now.Add(ttl)

	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, int64(ttl.Seconds()), nil
}

// Verify parses tokenString and returns the user id it was issued for.
func (s *JWTService) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
