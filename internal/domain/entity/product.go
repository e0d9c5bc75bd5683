// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a single catalog entry. Images hold public URLs produced by the
// image store; the binary data itself never passes through the domain layer.
type Product struct {
	ID                 uuid.UUID
	Name               string
	Description        string
	Price              float64
	Category           string
	SubCategory        string
	Images             []string
	StockQuantity      int
	AvailableSizes     []string
	AvailableColors    []string
	IsAvailable        bool
	DiscountPercentage float64
	Tags               []string
	Carousel           bool // Featured on the storefront carousel.
	MostSelling        bool
	Specification      ProductSpecification
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// ProductSpecification holds free-form descriptive attributes of a product.
type ProductSpecification struct {
	Material        string `json:"material,omitempty"`
	CareInstruction string `json:"careInstruction,omitempty"`
	Dimensions      string `json:"dimensions,omitempty"`
}
