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

type cartServiceFixture struct {
	cartRepo    *mocks.CartRepository
	productRepo *mocks.ProductRepository
	txManager   *mocks.TransactionManager
	service     usecase.CartUsecase
}

func newCartServiceFixture() *cartServiceFixture {
	cartRepo := new(mocks.CartRepository)
	productRepo := new(mocks.ProductRepository)
	txManager := &mocks.TransactionManager{
		Factory: &mocks.RepositoryFactory{
			CartRepository:    cartRepo,
			ProductRepository: productRepo,
		},
	}

	service := NewCartService(CartServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &cartServiceFixture{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		txManager:   txManager,
		service:     service,
	}
}

func TestCartService_GetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("absent cart is not found", func(t *testing.T) {
		f := newCartServiceFixture()
		userID := uuid.New()

		f.cartRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrCartNotFound)

		_, err := f.service.GetCart(ctx, userID)

		assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	availableProduct := &entity.Product{ID: productID, Name: "Linen Shirt", IsAvailable: true}

	t.Run("creates the cart on first add", func(t *testing.T) {
		f := newCartServiceFixture()

		f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
		f.productRepo.On("FindByID", ctx, productID).Return(availableProduct, nil)
		f.cartRepo.On("FindByUserID", ctx, userID).Return(nil, repository.ErrCartNotFound).Once()
		f.cartRepo.On("Create", ctx, mock.MatchedBy(func(cart *entity.Cart) bool {
			return cart.UserID == userID
		})).Return(nil)
		f.cartRepo.On("AddItem", ctx, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.ProductID == productID && item.Quantity == 2 &&
				item.Status == entity.CartItemNotProcessed
		})).Return(nil)
		f.cartRepo.On("FindByUserID", ctx, userID).Return(&entity.Cart{
			UserID: userID,
			Items:  []entity.CartItem{{ProductID: productID, Quantity: 2}},
		}, nil)

		cart, err := f.service.AddItem(ctx, &usecase.AddCartItemInput{
			UserID:    userID,
			ProductID: productID,
			Quantity:  2,
		})

		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 2, cart.Items[0].Quantity)
		f.cartRepo.AssertExpectations(t)
	})

	t.Run("merges quantity for a product already in the cart", func(t *testing.T) {
		f := newCartServiceFixture()
		cartID := uuid.New()
		existing := &entity.Cart{
			ID:     cartID,
			UserID: userID,
			Items:  []entity.CartItem{{CartID: cartID, ProductID: productID, Quantity: 1}},
		}

		f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
		f.productRepo.On("FindByID", ctx, productID).Return(availableProduct, nil)
		f.cartRepo.On("FindByUserID", ctx, userID).Return(existing, nil)
		f.cartRepo.On("UpdateItemQuantity", ctx, cartID, productID, 3).Return(nil)

		_, err := f.service.AddItem(ctx, &usecase.AddCartItemInput{
			UserID:    userID,
			ProductID: productID,
			Quantity:  2,
		})

		require.NoError(t, err)
		f.cartRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
		f.cartRepo.AssertExpectations(t)
	})

	t.Run("rejects an unavailable product", func(t *testing.T) {
		f := newCartServiceFixture()

		f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
		f.productRepo.On("FindByID", ctx, productID).
			Return(&entity.Product{ID: productID, IsAvailable: false}, nil)

		_, err := f.service.AddItem(ctx, &usecase.AddCartItemInput{
			UserID:    userID,
			ProductID: productID,
			Quantity:  1,
		})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
		f.cartRepo.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
	})
}

func TestCartService_UpdateItem(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()
	cartID := uuid.New()

	t.Run("absent line is not found", func(t *testing.T) {
		f := newCartServiceFixture()

		f.txManager.On("Execute", mock.Anything, mock.Anything).Return(nil)
		f.cartRepo.On("FindByUserID", ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
		f.cartRepo.On("UpdateItemQuantity", ctx, cartID, productID, 4).
			Return(repository.ErrCartItemNotFound)

		_, err := f.service.UpdateItem(ctx, &usecase.UpdateCartItemInput{
			UserID:    userID,
			ProductID: productID,
			Quantity:  4,
		})

		assert.ErrorIs(t, err, domainerrors.ErrCartItemNotFound)
	})
}

func TestCartService_ClearCart(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	cartID := uuid.New()

	f := newCartServiceFixture()
	f.cartRepo.On("FindByUserID", ctx, userID).Return(&entity.Cart{ID: cartID, UserID: userID}, nil)
	f.cartRepo.On("ClearItems", ctx, cartID).Return(nil)

	err := f.service.ClearCart(ctx, userID)

	require.NoError(t, err)
	f.cartRepo.AssertExpectations(t)
}
