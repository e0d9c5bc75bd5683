package mocks

import (
	"context"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// AuthUsecase is a mock implementation of usecase.AuthUsecase.
type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.AuthOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthUsecase) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPairOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.TokenPairOutput); ok {
		return output, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	args := m.Called(ctx, input)

	return args.Error(0)
}

func (m *AuthUsecase) LogoutAll(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *AuthUsecase) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// ProductUsecase is a mock implementation of usecase.ProductUsecase.
type ProductUsecase struct {
	mock.Mock
}

func (m *ProductUsecase) Create(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductUsecase) List(ctx context.Context, input *usecase.ListProductsInput) (*repository.ProductPage, error) {
	args := m.Called(ctx, input)
	if page, ok := args.Get(0).(*repository.ProductPage); ok {
		return page, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductUsecase) ListByCategory(ctx context.Context, input *usecase.ListProductsInput) (*repository.ProductPage, error) {
	args := m.Called(ctx, input)
	if page, ok := args.Get(0).(*repository.ProductPage); ok {
		return page, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductUsecase) NewArrivals(ctx context.Context, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductUsecase) Update(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	args := m.Called(ctx, input)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductUsecase) Deactivate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductUsecase) BulkUpdate(ctx context.Context, input *usecase.BulkUpdateInput) (int64, error) {
	args := m.Called(ctx, input)

	return args.Get(0).(int64), args.Error(1)
}

// CartUsecase is a mock implementation of usecase.CartUsecase.
type CartUsecase struct {
	mock.Mock
}

func (m *CartUsecase) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, userID)
	if cart, ok := args.Get(0).(*entity.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartUsecase) AddItem(ctx context.Context, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	args := m.Called(ctx, input)
	if cart, ok := args.Get(0).(*entity.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartUsecase) UpdateItem(ctx context.Context, input *usecase.UpdateCartItemInput) (*entity.Cart, error) {
	args := m.Called(ctx, input)
	if cart, ok := args.Get(0).(*entity.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartUsecase) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, userID, productID)
	if cart, ok := args.Get(0).(*entity.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartUsecase) ClearCart(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}
