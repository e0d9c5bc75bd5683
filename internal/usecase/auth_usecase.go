// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to register a new account.
type SignUpInput struct {
	Username        string `json:"username" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token being redeemed.
type RefreshInput struct {
	Token string `json:"token" validate:"required"`
}

// LogoutInput carries the refresh token whose session ends.
type LogoutInput struct {
	Token string `json:"token" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns the authenticated user together with a fresh token pair.
type AuthOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// TokenPairOutput returns a rotated token pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// AuthUsecase defines the interface for account and session operations.
// This is the contract that the delivery layer depends on.
type AuthUsecase interface {
	// SignUp registers a new customer account and opens its first session.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)

	// Login verifies credentials and opens a session. Unknown email and wrong
	// password fail identically.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh redeems a refresh token for a brand new pair. The redeemed token
	// is consumed; a second redemption of the same token fails.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)

	// Logout ends the session identified by the refresh token. Logging out an
	// unknown token is a no-op.
	Logout(ctx context.Context, input *LogoutInput) error

	// LogoutAll ends every session of the user, revoking all outstanding
	// refresh tokens at once.
	LogoutAll(ctx context.Context, userID uuid.UUID) error

	// CleanupExpiredSessions removes expired refresh tokens from the registry
	// and reports how many were deleted. Expired rows are already unusable;
	// this only keeps the table from growing without bound.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
