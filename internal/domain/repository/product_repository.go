// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a catalog listing. Zero values mean "no constraint".
type ProductFilter struct {
	Search      string // Case-insensitive match over name, description, category and sub-category.
	Category    string
	SubCategory string
	Tag         string
	Carousel    bool // Only products flagged for the storefront carousel.
	MostSelling bool // Only products flagged as best sellers.
}

// PageRequest describes the slice of a listing to return.
type PageRequest struct {
	Page   int    // 1-based page number.
	Limit  int    // Items per page.
	SortBy string // Column to sort by; implementations whitelist the accepted names.
	Order  string // "asc" or "desc".
}

// ProductPage is a single page of a catalog listing plus its pagination envelope.
type ProductPage struct {
	Products      []*entity.Product
	CurrentPage   int
	TotalPages    int
	TotalProducts int64
	HasNextPage   bool
	HasPrevPage   bool
}

// FieldUpdate addresses one product in a bulk update.
type FieldUpdate struct {
	ID     uuid.UUID
	Fields map[string]any
}

// ProductRepository defines the standard operations for catalog persistence.
type ProductRepository interface {
	// Create persists a new product. The storage layer fills in the generated
	// ID and timestamps on success.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// UpdateFields applies a partial update and returns the updated product.
	// Returns ErrProductNotFound when the ID does not exist.
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Product, error)

	// BulkUpdateFields applies partial updates to many products in one pass.
	// Missing IDs are skipped, matching upsert-free bulk semantics.
	BulkUpdateFields(ctx context.Context, updates []FieldUpdate) (int64, error)

	// Paginate lists products matching the filter, one page at a time.
	Paginate(ctx context.Context, filter ProductFilter, page PageRequest) (*ProductPage, error)

	// ListRecent returns the newest products, up to limit.
	ListRecent(ctx context.Context, limit int) ([]*entity.Product, error)
}
