package impl

import (
	"context"
	"log/slog"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetCart returns the user's cart with product details on every line.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartNotFound, "cart lookup failed")
		}

		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

// AddItem puts a product into the cart. The cart is created lazily on the
// first add; adding a product that is already in the cart merges quantities.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	srv.log(ctx).Debug("Adding cart item",
		slog.Any("userID", input.UserID), slog.Any("productID", input.ProductID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		// The product must exist and be purchasable before it enters a cart.
		product, findErr := repoFactory.ProductRepo().FindByID(ctx, input.ProductID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrProductNotFound, "cart add rejected")
			}

			return errors.Wrap(findErr, "failed to load product for cart add")
		}
		if !product.IsAvailable {
			return errors.Wrap(domainerrors.ErrProductNotFound, "product is not available")
		}

		cart, cartErr := cartRepo.FindByUserID(ctx, input.UserID)
		if cartErr != nil {
			if !errors.Is(cartErr, repository.ErrCartNotFound) {
				return errors.Wrap(cartErr, "failed to load cart for add")
			}

			cart = &entity.Cart{UserID: input.UserID}
			if createErr := cartRepo.Create(ctx, cart); createErr != nil {
				return errors.Wrap(createErr, "failed to create cart")
			}
		}

		if existing := cart.FindItem(input.ProductID); existing != nil {
			merged := existing.Quantity + input.Quantity

			return cartRepo.UpdateItemQuantity(ctx, cart.ID, input.ProductID, merged)
		}

		item := &entity.CartItem{
			CartID:    cart.ID,
			ProductID: input.ProductID,
			Quantity:  input.Quantity,
			Size:      input.Size,
			Status:    entity.CartItemNotProcessed,
		}

		return cartRepo.AddItem(ctx, item)
	})
	if err != nil {
		srv.log(ctx).Warn("Cart add failed", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return srv.GetCart(ctx, input.UserID)
}

// UpdateItem sets the quantity of an existing line.
func (srv *cartService) UpdateItem(ctx context.Context, input *usecase.UpdateCartItemInput) (*entity.Cart, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		cart, cartErr := cartRepo.FindByUserID(ctx, input.UserID)
		if cartErr != nil {
			if errors.Is(cartErr, repository.ErrCartNotFound) {
				return errors.Wrap(domainerrors.ErrCartNotFound, "cart update rejected")
			}

			return errors.Wrap(cartErr, "failed to load cart for update")
		}

		updateErr := cartRepo.UpdateItemQuantity(ctx, cart.ID, input.ProductID, input.Quantity)
		if errors.Is(updateErr, repository.ErrCartItemNotFound) {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "cart update rejected")
		}

		return updateErr
	})
	if err != nil {
		return nil, err
	}

	return srv.GetCart(ctx, input.UserID)
}

// RemoveItem deletes the line for a product. Removing an absent line succeeds.
func (srv *cartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCartNotFound, "cart remove rejected")
		}

		return nil, errors.Wrap(err, "failed to load cart for remove")
	}

	if err := srv.cartRepo.RemoveItem(ctx, cart.ID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return srv.GetCart(ctx, userID)
}

// ClearCart removes every line from the cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return errors.Wrap(domainerrors.ErrCartNotFound, "cart clear rejected")
		}

		return errors.Wrap(err, "failed to load cart for clear")
	}

	if err := srv.cartRepo.ClearItems(ctx, cart.ID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}
