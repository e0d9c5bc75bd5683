// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a product is not in the cart.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the standard operations for cart persistence.
type CartRepository interface {
	// FindByUserID retrieves the user's cart with its items and their products.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new, empty cart for a user.
	Create(ctx context.Context, cart *entity.Cart) error

	// AddItem inserts a new line into a cart.
	AddItem(ctx context.Context, item *entity.CartItem) error

	// UpdateItemQuantity sets the quantity of an existing line. Returns
	// ErrCartItemNotFound when the product has no line in the cart.
	UpdateItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// RemoveItem deletes the line for a product. Removing an absent line is not an error.
	RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error

	// ClearItems deletes every line in the cart.
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}
