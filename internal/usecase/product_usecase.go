package usecase

import (
	"context"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"

	"github.com/google/uuid"
)

// MaxProductImages caps how many images a single product may carry.
const MaxProductImages = 5

// --- Input DTOs ---

// ImageUpload is one raw image file attached to a product request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CreateProductInput defines the data required to create a catalog entry.
type CreateProductInput struct {
	Name               string                      `json:"name" validate:"required,max=255"`
	Description        string                      `json:"description"`
	Price              float64                     `json:"price" validate:"required,gt=0"`
	Category           string                      `json:"category" validate:"required,max=100"`
	SubCategory        string                      `json:"subCategory" validate:"max=100"`
	StockQuantity      int                         `json:"stockQuantity" validate:"gte=0"`
	AvailableSizes     []string                    `json:"availableSizes"`
	AvailableColors    []string                    `json:"availableColors"`
	DiscountPercentage float64                     `json:"discountPercentage" validate:"gte=0,lte=100"`
	Tags               []string                    `json:"tags"`
	Carousel           bool                        `json:"carousel"`
	MostSelling        bool                        `json:"mostSelling"`
	Specification      entity.ProductSpecification `json:"specification"`
	Images             []ImageUpload               `json:"-" validate:"max=5"`
}

// UpdateProductInput defines a partial catalog update. Nil pointers leave the
// corresponding column untouched; fresh images replace the stored set.
type UpdateProductInput struct {
	ID                 uuid.UUID                    `json:"-"`
	Name               *string                      `json:"name" validate:"omitempty,max=255"`
	Description        *string                      `json:"description"`
	Price              *float64                     `json:"price" validate:"omitempty,gt=0"`
	Category           *string                      `json:"category" validate:"omitempty,max=100"`
	SubCategory        *string                      `json:"subCategory" validate:"omitempty,max=100"`
	StockQuantity      *int                         `json:"stockQuantity" validate:"omitempty,gte=0"`
	AvailableSizes     []string                     `json:"availableSizes"`
	AvailableColors    []string                     `json:"availableColors"`
	IsAvailable        *bool                        `json:"isAvailable"`
	DiscountPercentage *float64                     `json:"discountPercentage" validate:"omitempty,gte=0,lte=100"`
	Tags               []string                     `json:"tags"`
	Carousel           *bool                        `json:"carousel"`
	MostSelling        *bool                        `json:"mostSelling"`
	Specification      *entity.ProductSpecification `json:"specification"`
	Images             []ImageUpload                `json:"-" validate:"max=5"`
}

// BulkUpdateEntry addresses one product inside a bulk update request.
type BulkUpdateEntry struct {
	ID     uuid.UUID      `json:"id" validate:"required"`
	Fields map[string]any `json:"fields" validate:"required"`
}

// BulkUpdateInput defines a partial update over many products at once.
type BulkUpdateInput struct {
	Updates []BulkUpdateEntry `json:"updates" validate:"required,min=1,dive"`
}

// ListProductsInput narrows and pages a catalog listing.
type ListProductsInput struct {
	Page        int    `query:"page" validate:"gte=0"`
	Limit       int    `query:"limit" validate:"gte=0,lte=100"`
	SortBy      string `query:"sortBy"`
	Order       string `query:"order" validate:"omitempty,oneof=asc desc"`
	Search      string `query:"search"`
	Category    string `query:"category"`
	SubCategory string `query:"subCategory"`
	Tag         string `query:"tag"`
	Carousel    bool   `query:"-"`
	MostSelling bool   `query:"-"`
}

// ProductUsecase defines the interface for catalog operations.
type ProductUsecase interface {
	// Create uploads the attached images and persists a new product.
	Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// Get retrieves a single product by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List pages through the catalog with optional search and filters.
	List(ctx context.Context, input *ListProductsInput) (*repository.ProductPage, error)

	// ListByCategory behaves like List but reports an empty first page of a
	// category as not found.
	ListByCategory(ctx context.Context, input *ListProductsInput) (*repository.ProductPage, error)

	// NewArrivals returns the most recently added products.
	NewArrivals(ctx context.Context, limit int) ([]*entity.Product, error)

	// Update applies a partial update, re-uploading images when provided.
	Update(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)

	// Deactivate marks a product unavailable without deleting it.
	Deactivate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// BulkUpdate applies whitelisted partial updates to many products and
	// returns the number of rows touched.
	BulkUpdate(ctx context.Context, input *BulkUpdateInput) (int64, error)
}
