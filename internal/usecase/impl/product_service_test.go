package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/mocks"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type productServiceFixture struct {
	productRepo *mocks.ProductRepository
	imageStore  *mocks.ImageStore
	service     usecase.ProductUsecase
}

func newProductServiceFixture() *productServiceFixture {
	productRepo := new(mocks.ProductRepository)
	imageStore := new(mocks.ImageStore)

	service := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		ImageStore:  imageStore,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &productServiceFixture{
		productRepo: productRepo,
		imageStore:  imageStore,
		service:     service,
	}
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("uploads images and stores their URLs", func(t *testing.T) {
		f := newProductServiceFixture()

		f.imageStore.On("Upload", ctx, []byte("img-1"), "front.jpg", "image/jpeg").
			Return("https://cdn.example.com/front.jpg", nil)
		f.imageStore.On("Upload", ctx, []byte("img-2"), "back.jpg", "image/jpeg").
			Return("https://cdn.example.com/back.jpg", nil)
		f.productRepo.On("Create", ctx, mock.MatchedBy(func(product *entity.Product) bool {
			return len(product.Images) == 2 && product.IsAvailable
		})).Return(nil)

		product, err := f.service.Create(ctx, &usecase.CreateProductInput{
			Name:     "Linen Shirt",
			Price:    49.9,
			Category: "men",
			Images: []usecase.ImageUpload{
				{Filename: "front.jpg", ContentType: "image/jpeg", Data: []byte("img-1")},
				{Filename: "back.jpg", ContentType: "image/jpeg", Data: []byte("img-2")},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://cdn.example.com/front.jpg",
			"https://cdn.example.com/back.jpg",
		}, product.Images)
		assert.True(t, product.IsAvailable)
	})

	t.Run("rejects more than five images", func(t *testing.T) {
		f := newProductServiceFixture()

		images := make([]usecase.ImageUpload, usecase.MaxProductImages+1)
		for i := range images {
			images[i] = usecase.ImageUpload{Filename: "a.jpg", ContentType: "image/jpeg"}
		}

		_, err := f.service.Create(ctx, &usecase.CreateProductInput{
			Name:     "Linen Shirt",
			Price:    49.9,
			Category: "men",
			Images:   images,
		})

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		f.imageStore.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProductService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product is not found", func(t *testing.T) {
		f := newProductServiceFixture()
		id := uuid.New()

		f.productRepo.On("FindByID", ctx, id).Return(nil, repository.ErrProductNotFound)

		_, err := f.service.Get(ctx, id)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_ListByCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("empty category page is not found", func(t *testing.T) {
		f := newProductServiceFixture()

		f.productRepo.On("Paginate", ctx, mock.MatchedBy(func(filter repository.ProductFilter) bool {
			return filter.Category == "kids"
		}), mock.Anything).Return(&repository.ProductPage{Products: nil}, nil)

		_, err := f.service.ListByCategory(ctx, &usecase.ListProductsInput{Category: "kids"})

		assert.ErrorIs(t, err, domainerrors.ErrNoProductsInCategory)
	})

	t.Run("non-empty category page passes through", func(t *testing.T) {
		f := newProductServiceFixture()

		f.productRepo.On("Paginate", ctx, mock.Anything, mock.Anything).Return(&repository.ProductPage{
			Products:      []*entity.Product{{Name: "Linen Shirt"}},
			CurrentPage:   1,
			TotalPages:    1,
			TotalProducts: 1,
		}, nil)

		page, err := f.service.ListByCategory(ctx, &usecase.ListProductsInput{Category: "men"})

		require.NoError(t, err)
		assert.Len(t, page.Products, 1)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("only set fields reach the repository", func(t *testing.T) {
		f := newProductServiceFixture()
		id := uuid.New()
		price := 39.9

		f.productRepo.On("UpdateFields", ctx, id, mock.MatchedBy(func(fields map[string]any) bool {
			_, hasName := fields["name"]

			return len(fields) == 1 && !hasName && fields["price"] == price
		})).Return(&entity.Product{ID: id, Price: price}, nil)

		product, err := f.service.Update(ctx, &usecase.UpdateProductInput{ID: id, Price: &price})

		require.NoError(t, err)
		assert.Equal(t, price, product.Price)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		f := newProductServiceFixture()
		id := uuid.New()
		name := "Renamed"

		f.productRepo.On("UpdateFields", ctx, id, mock.Anything).
			Return(nil, repository.ErrProductNotFound)

		_, err := f.service.Update(ctx, &usecase.UpdateProductInput{ID: id, Name: &name})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_Deactivate(t *testing.T) {
	ctx := context.Background()
	f := newProductServiceFixture()
	id := uuid.New()

	f.productRepo.On("UpdateFields", ctx, id, map[string]any{"is_available": false}).
		Return(&entity.Product{ID: id, IsAvailable: false}, nil)

	product, err := f.service.Deactivate(ctx, id)

	require.NoError(t, err)
	assert.False(t, product.IsAvailable)
}

func TestProductService_BulkUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("maps json names to columns", func(t *testing.T) {
		f := newProductServiceFixture()
		id := uuid.New()

		f.productRepo.On("BulkUpdateFields", ctx, mock.MatchedBy(func(updates []repository.FieldUpdate) bool {
			if len(updates) != 1 {
				return false
			}
			fields := updates[0].Fields

			return fields["discount_percentage"] == 15.0 && fields["most_selling"] == true
		})).Return(int64(1), nil)

		touched, err := f.service.BulkUpdate(ctx, &usecase.BulkUpdateInput{
			Updates: []usecase.BulkUpdateEntry{
				{ID: id, Fields: map[string]any{"discountPercentage": 15.0, "mostSelling": true}},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), touched)
	})

	t.Run("rejects fields outside the whitelist", func(t *testing.T) {
		f := newProductServiceFixture()

		_, err := f.service.BulkUpdate(ctx, &usecase.BulkUpdateInput{
			Updates: []usecase.BulkUpdateEntry{
				{ID: uuid.New(), Fields: map[string]any{"images": []string{"x"}}},
			},
		})

		require.Error(t, err)
		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		f.productRepo.AssertNotCalled(t, "BulkUpdateFields", mock.Anything, mock.Anything)
	})
}
