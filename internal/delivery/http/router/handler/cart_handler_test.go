package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"boutique/internal/delivery/http/middleware"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/mocks"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartHandler_Get(t *testing.T) {
	t.Run("returns the cart of the authenticated user", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.CartUsecase)
		h := NewCartHandler(uc, discardLogger())

		user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
		uc.On("GetCart", mock.Anything, user.ID).Return(&entity.Cart{UserID: user.ID}, nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/cart", nil), rec)
		c.Set(middleware.ContextKeyUser, user)

		perform(e, c, h.Get)

		require.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("missing authentication short-circuits", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.CartUsecase)
		h := NewCartHandler(uc, discardLogger())

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/cart", nil), rec)

		perform(e, c, h.Get)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		uc.AssertNotCalled(t, "GetCart", mock.Anything, mock.Anything)
	})
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("scopes the add to the authenticated user", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.CartUsecase)
		h := NewCartHandler(uc, discardLogger())

		user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
		productID := uuid.New()
		uc.On("AddItem", mock.Anything, mock.MatchedBy(func(input *usecase.AddCartItemInput) bool {
			return input.UserID == user.ID && input.ProductID == productID && input.Quantity == 2
		})).Return(&entity.Cart{UserID: user.ID}, nil)

		body := fmt.Sprintf(`{"productId":%q,"quantity":2}`, productID)
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/cart/add", body), rec)
		c.Set(middleware.ContextKeyUser, user)

		perform(e, c, h.AddItem)

		require.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("rejects a zero quantity", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.CartUsecase)
		h := NewCartHandler(uc, discardLogger())

		user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
		body := fmt.Sprintf(`{"productId":%q,"quantity":0}`, uuid.New())
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/cart/add", body), rec)
		c.Set(middleware.ContextKeyUser, user)

		perform(e, c, h.AddItem)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		uc.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
	})

	t.Run("empty body is a validation failure", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.CartUsecase)
		h := NewCartHandler(uc, discardLogger())

		user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPost, "/api/cart/add", ""), rec)
		c.Set(middleware.ContextKeyUser, user)

		perform(e, c, h.AddItem)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeEnvelope(t, rec)["error"].(map[string]any)
		assert.Equal(t, "VALIDATION_FAILED", errInfo["code"])
		uc.AssertNotCalled(t, "AddItem", mock.Anything, mock.Anything)
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	t.Run("scopes the update to the authenticated user", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.CartUsecase)
		h := NewCartHandler(uc, discardLogger())

		user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
		productID := uuid.New()
		uc.On("UpdateItem", mock.Anything, mock.MatchedBy(func(input *usecase.UpdateCartItemInput) bool {
			return input.UserID == user.ID && input.ProductID == productID && input.Quantity == 5
		})).Return(&entity.Cart{UserID: user.ID}, nil)

		body := fmt.Sprintf(`{"productId":%q,"quantity":5}`, productID)
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPut, "/api/cart/update", body), rec)
		c.Set(middleware.ContextKeyUser, user)

		perform(e, c, h.UpdateItem)

		require.Equal(t, http.StatusOK, rec.Code)
		uc.AssertExpectations(t)
	})

	t.Run("empty body is a validation failure", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.CartUsecase)
		h := NewCartHandler(uc, discardLogger())

		user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
		rec := httptest.NewRecorder()
		c := e.NewContext(jsonRequest(http.MethodPut, "/api/cart/update", ""), rec)
		c.Set(middleware.ContextKeyUser, user)

		perform(e, c, h.UpdateItem)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		errInfo := decodeEnvelope(t, rec)["error"].(map[string]any)
		assert.Equal(t, "VALIDATION_FAILED", errInfo["code"])
		uc.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything)
	})
}

func TestCartHandler_RemoveItem(t *testing.T) {
	t.Run("absent cart maps to 404", func(t *testing.T) {
		e := newTestEcho()
		uc := new(mocks.CartUsecase)
		h := NewCartHandler(uc, discardLogger())

		user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
		productID := uuid.New()
		uc.On("RemoveItem", mock.Anything, user.ID, productID).
			Return(nil, domainerrors.ErrCartNotFound.WrapMessage("cart remove rejected"))

		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/cart/remove/"+productID.String(), nil), rec)
		c.SetParamNames("productId")
		c.SetParamValues(productID.String())
		c.Set(middleware.ContextKeyUser, user)

		perform(e, c, h.RemoveItem)

		require.Equal(t, http.StatusNotFound, rec.Code)
		errInfo := decodeEnvelope(t, rec)["error"].(map[string]any)
		assert.Equal(t, "CART_NOT_FOUND", errInfo["code"])
	})
}

func TestCartHandler_Clear(t *testing.T) {
	e := newTestEcho()
	uc := new(mocks.CartUsecase)
	h := NewCartHandler(uc, discardLogger())

	user := &entity.User{ID: uuid.New(), Role: entity.RoleCustomer}
	uc.On("ClearCart", mock.Anything, user.ID).Return(nil)

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodDelete, "/api/cart/clear", nil), rec)
	c.Set(middleware.ContextKeyUser, user)

	perform(e, c, h.Clear)

	require.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}
