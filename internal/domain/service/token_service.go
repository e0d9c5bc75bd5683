package service

import (
	"time"

	"boutique/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the fixed, minimal claim set embedded in every token. The shape
// never varies, so a password hash can never end up inside a signed token.
type Claims struct {
	UserID   uuid.UUID `json:"sub"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	Type     string    `json:"type"` // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying JWTs.
type TokenService interface {
	// GenerateTokens mints an access/refresh pair for the given user. Both
	// carry the same identity claims; only TTL and signing secret differ.
	GenerateTokens(user *entity.User) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks signature and expiry against the access
	// secret. Stateless: no registry lookup is involved.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks signature and expiry against the refresh
	// secret. Registry membership is checked separately by the caller.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
