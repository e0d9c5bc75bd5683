// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Email doubles as the login identifier and
// is unique at the storage layer; username is display-only and may repeat.
type User struct {
	ID           uuid.UUID // The unique identifier for the account, assigned at insert time.
	Email        string    // The user's login email, unique and case-sensitive as stored.
	Username     string    // The user's display name. Not unique.
	PasswordHash string    // bcrypt hash of the password. The plaintext is never persisted.
	Role         Role      // Coarse authorization tier, customer by default.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
