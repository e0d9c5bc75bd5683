package model

import (
	"time"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. Slice and struct attributes are
// stored as JSONB columns through GORM's JSON serializer, keeping the schema
// flat while products carry a variable number of images, sizes and tags.
type ProductModel struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string                      `gorm:"type:varchar(255);not null;index"`
	Description        string                      `gorm:"type:text"`
	Price              float64                     `gorm:"type:numeric(12,2);not null"`
	Category           string                      `gorm:"type:varchar(100);index"`
	SubCategory        string                      `gorm:"type:varchar(100);index"`
	Images             []string                    `gorm:"type:jsonb;serializer:json"`
	StockQuantity      int                         `gorm:"not null;default:0"`
	AvailableSizes     []string                    `gorm:"type:jsonb;serializer:json"`
	AvailableColors    []string                    `gorm:"type:jsonb;serializer:json"`
	IsAvailable        bool                        `gorm:"not null;default:true"`
	DiscountPercentage float64                     `gorm:"type:numeric(5,2);not null;default:0"`
	Tags               []string                    `gorm:"type:jsonb;serializer:json"`
	Carousel           bool                        `gorm:"not null;default:false;index"`
	MostSelling        bool                        `gorm:"not null;default:false;index"`
	Specification      entity.ProductSpecification `gorm:"type:jsonb;serializer:json"`
	CreatedAt          time.Time                   `gorm:"index"`
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
