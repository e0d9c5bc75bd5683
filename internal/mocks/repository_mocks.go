// Package mocks provides hand-written testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

func (m *UserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	args := m.Called(ctx, id, role)

	return args.Error(0)
}

// RefreshTokenRepository is a mock implementation of repository.RefreshTokenRepository.
type RefreshTokenRepository struct {
	mock.Mock
}

func (m *RefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	args := m.Called(ctx, token)

	return args.Error(0)
}

func (m *RefreshTokenRepository) Redeem(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if token, ok := args.Get(0).(*entity.RefreshToken); ok {
		return token, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *RefreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)

	return args.Error(0)
}

func (m *RefreshTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)

	return args.Error(0)
}

func (m *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)

	return args.Get(0).(int64), args.Error(1)
}

// ProductRepository is a mock implementation of repository.ProductRepository.
type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	args := m.Called(ctx, product)

	return args.Error(0)
}

func (m *ProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]any) (*entity.Product, error) {
	args := m.Called(ctx, id, fields)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) BulkUpdateFields(ctx context.Context, updates []repository.FieldUpdate) (int64, error) {
	args := m.Called(ctx, updates)

	return args.Get(0).(int64), args.Error(1)
}

func (m *ProductRepository) Paginate(ctx context.Context, filter repository.ProductFilter, page repository.PageRequest) (*repository.ProductPage, error) {
	args := m.Called(ctx, filter, page)
	if result, ok := args.Get(0).(*repository.ProductPage); ok {
		return result, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *ProductRepository) ListRecent(ctx context.Context, limit int) ([]*entity.Product, error) {
	args := m.Called(ctx, limit)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

// CartRepository is a mock implementation of repository.CartRepository.
type CartRepository struct {
	mock.Mock
}

func (m *CartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	args := m.Called(ctx, userID)
	if cart, ok := args.Get(0).(*entity.Cart); ok {
		return cart, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *CartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	args := m.Called(ctx, cart)

	return args.Error(0)
}

func (m *CartRepository) AddItem(ctx context.Context, item *entity.CartItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *CartRepository) UpdateItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error {
	args := m.Called(ctx, cartID, productID, quantity)

	return args.Error(0)
}

func (m *CartRepository) RemoveItem(ctx context.Context, cartID, productID uuid.UUID) error {
	args := m.Called(ctx, cartID, productID)

	return args.Error(0)
}

func (m *CartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	args := m.Called(ctx, cartID)

	return args.Error(0)
}

// TransactionManager is a mock implementation of repository.TransactionManager.
// Execute runs the callback against the configured RepositoryFactory, so tests
// observe the same repository calls a real transaction would see.
type TransactionManager struct {
	mock.Mock

	Factory repository.RepositoryFactory
}

func (m *TransactionManager) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}

	return fn(m.Factory)
}

// RepositoryFactory is a mock implementation of repository.RepositoryFactory.
// It hands back whatever mocks it was constructed with.
type RepositoryFactory struct {
	UserRepository         *UserRepository
	RefreshTokenRepository *RefreshTokenRepository
	ProductRepository      *ProductRepository
	CartRepository         *CartRepository
}

func (f *RepositoryFactory) UserRepo() repository.UserRepository {
	return f.UserRepository
}

func (f *RepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.RefreshTokenRepository
}

func (f *RepositoryFactory) ProductRepo() repository.ProductRepository {
	return f.ProductRepository
}

func (f *RepositoryFactory) CartRepo() repository.CartRepository {
	return f.CartRepository
}
