// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, redeemable user session. Presence of
// the row is the sole source of truth for validity: redemption removes the
// row atomically, so a token can be redeemed at most once.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw token; the raw value is never stored.
	ExpiresAt time.Time // The time when this refresh token expires regardless of redemption.
	CreatedAt time.Time // Timestamp of when this session was created.
}
