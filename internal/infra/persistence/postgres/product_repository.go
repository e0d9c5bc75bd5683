package postgres

import (
	"context"
	"strings"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// sortableProductColumns whitelists the column names accepted by Paginate.
// Anything else falls back to the creation time so user input never reaches
// the ORDER BY clause directly.
var sortableProductColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"createdAt":  "created_at",
	"created_at": "created_at",
	"updatedAt":  "updated_at",
	"updated_at": "updated_at",
}

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a single product by its unique ID.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toProductDomain(&productM), nil
}

// UpdateFields applies a partial update and returns the fresh row.
func (repo *productRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Product, error) {
	if len(fields) > 0 {
		result := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", id).
			Updates(fields)
		if result.Error != nil {
			return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
		}
		if result.RowsAffected == 0 {
			return nil, repository.ErrProductNotFound
		}
	}

	return repo.FindByID(ctx, id)
}

// BulkUpdateFields applies partial updates to many products in one pass.
// Missing IDs are skipped; the return value counts the rows actually touched.
func (repo *productRepository) BulkUpdateFields(ctx context.Context, updates []repository.FieldUpdate) (int64, error) {
	var touched int64
	for _, update := range updates {
		if len(update.Fields) == 0 {
			continue
		}

		result := repo.db.WithContext(ctx).
			Model(&model.ProductModel{}).
			Where("id = ?", update.ID).
			Updates(update.Fields)
		if result.Error != nil {
			return touched, domainerrors.NewDatabaseExecuteError(result.Error, "failed to bulk update products")
		}

		touched += result.RowsAffected
	}

	return touched, nil
}

// Paginate lists products matching the filter, one page at a time. The count
// and the page query share the same filtered scope so the envelope stays
// consistent with the returned rows.
func (repo *productRepository) Paginate(ctx context.Context, filter repository.ProductFilter, page repository.PageRequest) (*repository.ProductPage, error) {
	// The session boundary lets the count and the page query branch off the
	// same filtered scope without sharing statement state.
	scope := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.ProductModel{}), filter).
		Session(&gorm.Session{})

	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	pageNum := page.Page
	if pageNum < 1 {
		pageNum = 1
	}
	limit := page.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	var productModels []model.ProductModel
	if err := scope.
		Order(buildOrderClause(page.SortBy, page.Order)).
		Offset((pageNum - 1) * limit).
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return &repository.ProductPage{
		Products:      products,
		CurrentPage:   pageNum,
		TotalPages:    totalPages,
		TotalProducts: total,
		HasNextPage:   pageNum < totalPages,
		HasPrevPage:   pageNum > 1 && total > 0,
	}, nil
}

// ListRecent returns the newest products, up to limit.
func (repo *productRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit < 1 {
		limit = defaultPageLimit
	}

	var productModels []model.ProductModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	products := make([]*entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, toProductDomain(&productModels[i]))
	}

	return products, nil
}

// applyFilter translates a domain filter into WHERE clauses.
func (repo *productRepository) applyFilter(scope *gorm.DB, filter repository.ProductFilter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		scope = scope.Where(
			"name ILIKE ? OR description ILIKE ? OR category ILIKE ? OR sub_category ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Category != "" {
		scope = scope.Where("category = ?", filter.Category)
	}
	if filter.SubCategory != "" {
		scope = scope.Where("sub_category = ?", filter.SubCategory)
	}
	if filter.Tag != "" {
		// JSONB containment on the tags array.
		scope = scope.Where("tags @> ?", `["`+filter.Tag+`"]`)
	}
	if filter.Carousel {
		scope = scope.Where("carousel = ?", true)
	}
	if filter.MostSelling {
		scope = scope.Where("most_selling = ?", true)
	}

	return scope
}

func buildOrderClause(sortBy, order string) string {
	column, ok := sortableProductColumns[sortBy]
	if !ok {
		column = "created_at"
	}

	direction := "DESC"
	if strings.EqualFold(order, "asc") {
		direction = "ASC"
	}

	return column + " " + direction
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		Category:           data.Category,
		SubCategory:        data.SubCategory,
		Images:             data.Images,
		StockQuantity:      data.StockQuantity,
		AvailableSizes:     data.AvailableSizes,
		AvailableColors:    data.AvailableColors,
		IsAvailable:        data.IsAvailable,
		DiscountPercentage: data.DiscountPercentage,
		Tags:               data.Tags,
		Carousel:           data.Carousel,
		MostSelling:        data.MostSelling,
		Specification:      data.Specification,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		Category:           data.Category,
		SubCategory:        data.SubCategory,
		Images:             data.Images,
		StockQuantity:      data.StockQuantity,
		AvailableSizes:     data.AvailableSizes,
		AvailableColors:    data.AvailableColors,
		IsAvailable:        data.IsAvailable,
		DiscountPercentage: data.DiscountPercentage,
		Tags:               data.Tags,
		Carousel:           data.Carousel,
		MostSelling:        data.MostSelling,
		Specification:      data.Specification,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
