package impl

import (
	"context"
	"encoding/json"
	"log/slog"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultNewArrivalsLimit = 10

// bulkUpdatableFields whitelists the JSON field names a bulk update may touch,
// mapped to their column names. Anything outside the list is rejected before
// the statement is built.
var bulkUpdatableFields = map[string]string{
	"name":               "name",
	"description":        "description",
	"price":              "price",
	"category":           "category",
	"subCategory":        "sub_category",
	"stockQuantity":      "stock_quantity",
	"isAvailable":        "is_available",
	"discountPercentage": "discount_percentage",
	"carousel":           "carousel",
	"mostSelling":        "most_selling",
}

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create uploads the attached images and persists a new product.
func (srv *productService) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name))

	imageURLs, err := srv.uploadImages(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	product := &entity.Product{
		Name:               input.Name,
		Description:        input.Description,
		Price:              input.Price,
		Category:           input.Category,
		SubCategory:        input.SubCategory,
		Images:             imageURLs,
		StockQuantity:      input.StockQuantity,
		AvailableSizes:     input.AvailableSizes,
		AvailableColors:    input.AvailableColors,
		IsAvailable:        true,
		DiscountPercentage: input.DiscountPercentage,
		Tags:               input.Tags,
		Carousel:           input.Carousel,
		MostSelling:        input.MostSelling,
		Specification:      input.Specification,
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID))

	return product, nil
}

// Get retrieves a single product by ID.
func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// List pages through the catalog with optional search and filters.
func (srv *productService) List(ctx context.Context, input *usecase.ListProductsInput) (*repository.ProductPage, error) {
	page, err := srv.productRepo.Paginate(ctx, buildProductFilter(input), buildPageRequest(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return page, nil
}

// ListByCategory behaves like List but an empty page of a category is reported
// as not found, matching the storefront's category browsing contract.
func (srv *productService) ListByCategory(ctx context.Context, input *usecase.ListProductsInput) (*repository.ProductPage, error) {
	page, err := srv.List(ctx, input)
	if err != nil {
		return nil, err
	}

	if len(page.Products) == 0 {
		return nil, errors.Wrap(domainerrors.ErrNoProductsInCategory, "category listing empty")
	}

	return page, nil
}

// NewArrivals returns the most recently added products.
func (srv *productService) NewArrivals(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = defaultNewArrivalsLimit
	}

	products, err := srv.productRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list new arrivals")
	}

	return products, nil
}

// Update applies a partial update, re-uploading images when provided.
func (srv *productService) Update(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", input.ID))

	fields := buildUpdateFields(input)

	if len(input.Images) > 0 {
		imageURLs, err := srv.uploadImages(ctx, input.Images)
		if err != nil {
			return nil, err
		}
		fields["images"] = toJSONColumn(imageURLs)
	}

	product, err := srv.productRepo.UpdateFields(ctx, input.ID, fields)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product update failed")
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// Deactivate marks a product unavailable without deleting it, so existing
// cart lines keep resolving.
func (srv *productService) Deactivate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	srv.log(ctx).Info("Deactivating product", slog.Any("productID", id))

	product, err := srv.productRepo.UpdateFields(ctx, id, map[string]any{"is_available": false})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product deactivation failed")
		}

		return nil, errors.Wrap(err, "failed to deactivate product")
	}

	return product, nil
}

// BulkUpdate applies whitelisted partial updates to many products.
func (srv *productService) BulkUpdate(ctx context.Context, input *usecase.BulkUpdateInput) (int64, error) {
	srv.log(ctx).Info("Bulk updating products", slog.Int("count", len(input.Updates)))

	updates := make([]repository.FieldUpdate, 0, len(input.Updates))
	for _, entry := range input.Updates {
		columns := make(map[string]any, len(entry.Fields))
		for name, value := range entry.Fields {
			column, ok := bulkUpdatableFields[name]
			if !ok {
				return 0, domainerrors.ErrValidationFailed.WithFields([]domainerrors.FieldViolation{
					{Field: name, Message: "field cannot be bulk updated"},
				})
			}
			columns[column] = value
		}

		updates = append(updates, repository.FieldUpdate{ID: entry.ID, Fields: columns})
	}

	touched, err := srv.productRepo.BulkUpdateFields(ctx, updates)
	if err != nil {
		return 0, errors.Wrap(err, "failed to bulk update products")
	}

	return touched, nil
}

func (srv *productService) uploadImages(ctx context.Context, images []usecase.ImageUpload) ([]string, error) {
	if len(images) > usecase.MaxProductImages {
		return nil, domainerrors.ErrValidationFailed.WithFields([]domainerrors.FieldViolation{
			{Field: "images", Message: "at most 5 images per product"},
		})
	}

	urls := make([]string, 0, len(images))
	for _, image := range images {
		url, err := srv.imageStore.Upload(ctx, image.Data, image.Filename, image.ContentType)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload product image")
		}
		urls = append(urls, url)
	}

	return urls, nil
}

func buildProductFilter(input *usecase.ListProductsInput) repository.ProductFilter {
	return repository.ProductFilter{
		Search:      input.Search,
		Category:    input.Category,
		SubCategory: input.SubCategory,
		Tag:         input.Tag,
		Carousel:    input.Carousel,
		MostSelling: input.MostSelling,
	}
}

func buildPageRequest(input *usecase.ListProductsInput) repository.PageRequest {
	return repository.PageRequest{
		Page:   input.Page,
		Limit:  input.Limit,
		SortBy: input.SortBy,
		Order:  input.Order,
	}
}

func buildUpdateFields(input *usecase.UpdateProductInput) map[string]any {
	fields := map[string]any{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Description != nil {
		fields["description"] = *input.Description
	}
	if input.Price != nil {
		fields["price"] = *input.Price
	}
	if input.Category != nil {
		fields["category"] = *input.Category
	}
	if input.SubCategory != nil {
		fields["sub_category"] = *input.SubCategory
	}
	if input.StockQuantity != nil {
		fields["stock_quantity"] = *input.StockQuantity
	}
	if input.AvailableSizes != nil {
		fields["available_sizes"] = toJSONColumn(input.AvailableSizes)
	}
	if input.AvailableColors != nil {
		fields["available_colors"] = toJSONColumn(input.AvailableColors)
	}
	if input.IsAvailable != nil {
		fields["is_available"] = *input.IsAvailable
	}
	if input.DiscountPercentage != nil {
		fields["discount_percentage"] = *input.DiscountPercentage
	}
	if input.Tags != nil {
		fields["tags"] = toJSONColumn(input.Tags)
	}
	if input.Carousel != nil {
		fields["carousel"] = *input.Carousel
	}
	if input.MostSelling != nil {
		fields["most_selling"] = *input.MostSelling
	}
	if input.Specification != nil {
		fields["specification"] = toJSONColumn(*input.Specification)
	}

	return fields
}

// toJSONColumn serializes a value destined for a JSONB column. Map-based
// updates bypass the model's field serializer, so the encoding happens here.
func toJSONColumn(v any) any {
	encoded, err := json.Marshal(v)
	if err != nil {
		return v
	}

	return string(encoded)
}
