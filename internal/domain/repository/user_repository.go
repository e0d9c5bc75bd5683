// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert violates the email unique
	// index. The index is the actual correctness guarantee for concurrent
	// signups; the application-level existence check only improves the message.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity. The storage layer fills in the
	// generated ID and timestamps on success.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRole changes the role of an existing user. Only the provisioning
	// command uses this; the HTTP surface never mutates roles.
	UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error
}
