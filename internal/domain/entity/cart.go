// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItemStatus tracks the fulfillment state of a single cart line.
type CartItemStatus string

const (
	CartItemNotProcessed CartItemStatus = "not_processed"
	CartItemProcessing   CartItemStatus = "processing"
	CartItemShipped      CartItemStatus = "shipped"
	CartItemDelivered    CartItemStatus = "delivered"
	CartItemCancelled    CartItemStatus = "cancelled"
)

// IsValid checks if the CartItemStatus is a valid value.
func (s CartItemStatus) IsValid() bool {
	switch s {
	case CartItemNotProcessed, CartItemProcessing, CartItemShipped, CartItemDelivered, CartItemCancelled:
		return true
	default:
		return false
	}
}

// Cart is the per-user shopping cart. Each user has at most one cart, created
// lazily on the first add.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is a single product line inside a cart.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	Product   *Product // Populated on reads; nil when the line is written.
	Quantity  int
	Size      string
	Status    CartItemStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindItem returns the cart line for the given product, or nil when absent.
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}

	return nil
}
