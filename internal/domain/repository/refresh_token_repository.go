// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is absent from the
// registry, including the case where a concurrent redemption already consumed it.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository is the durable registry of currently-valid refresh
// tokens. Row presence is the sole source of truth for validity, which lets
// multiple instances share one registry and survive restarts.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, registering a session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// Redeem atomically removes the token with the given hash and returns it.
	// Exactly one of any set of concurrent redeemers succeeds; the rest get
	// ErrRefreshTokenNotFound. Implementations must use a single conditional
	// delete, never a read-then-delete pair.
	Redeem(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash removes a token without returning it, used for logout.
	// Deleting an absent token is not an error.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes every session of a user.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes tokens past their expiry. Called periodically for cleanup.
	DeleteExpired(ctx context.Context) (int64, error)
}
