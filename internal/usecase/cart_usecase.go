package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddCartItemInput defines the data required to put a product into a cart.
type AddCartItemInput struct {
	UserID    uuid.UUID `json:"-"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
	Size      string    `json:"size" validate:"max=20"`
}

// UpdateCartItemInput sets the quantity of an existing cart line.
type UpdateCartItemInput struct {
	UserID    uuid.UUID `json:"-"`
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// CartUsecase defines the interface for cart operations. Every operation is
// scoped to the authenticated user; one user can never touch another's cart.
type CartUsecase interface {
	// GetCart returns the user's cart with product details on every line.
	GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// AddItem puts a product into the cart, creating the cart on first use and
	// merging quantities when the product is already there.
	AddItem(ctx context.Context, input *AddCartItemInput) (*entity.Cart, error)

	// UpdateItem sets the quantity of an existing line.
	UpdateItem(ctx context.Context, input *UpdateCartItemInput) (*entity.Cart, error)

	// RemoveItem deletes the line for a product.
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error)

	// ClearCart removes every line from the cart.
	ClearCart(ctx context.Context, userID uuid.UUID) error
}
