package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"user-vault/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const (
	ScopeAccess  = "access_token"
	ScopeRefresh = "refresh_token"
)

// CustomClaims is the JWT payload for both access and refresh tokens;
// Scope tells them apart.
type CustomClaims struct {
	UserID int        `json:"id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
	Scope  string     `json:"scope"`
	jwt.RegisteredClaims
}

var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// AuthenticateUser verifies a plaintext password against the user's
// stored hash.
func AuthenticateUser(ctx context.Context, user model.User, password string) error {
	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return errors.New("invalid password")
	}
	return nil
}

func issueToken(user model.User, scope string, ttl time.Duration) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", fmt.Errorf("JWT_SECRET not set")
	}

	now := timeNow()
	claims := CustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		Scope:  scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// IssueAccessToken signs a short-lived access JWT for the user.
func IssueAccessToken(user model.User, ttl time.Duration) (string, error) {
	return issueToken(user, ScopeAccess, ttl)
}

// IssueRefreshToken signs a long-lived refresh JWT for the user. The
// returned string is also what gets persisted on the user row, so a
// stolen-but-rotated token can be detected by comparison.
func IssueRefreshToken(user model.User, ttl time.Duration) (string, error) {
	return issueToken(user, ScopeRefresh, ttl)
}

func verifyToken(tokenString, scope string) (*CustomClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	token, err := parseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Scope != scope {
		return nil, fmt.Errorf("invalid token scope %q", claims.Scope)
	}
	return claims, nil
}

// VerifyAccessToken validates an access JWT and returns its claims.
func VerifyAccessToken(tokenString string) (*CustomClaims, error) {
	return verifyToken(tokenString, ScopeAccess)
}

// VerifyRefreshToken validates a refresh JWT and returns its claims.
func VerifyRefreshToken(tokenString string) (*CustomClaims, error) {
	return verifyToken(tokenString, ScopeRefresh)
}
