package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/mocks"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func authRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, token)
	}

	return req
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	e := echo.New()
	userID := uuid.New()
	storedUser := &entity.User{ID: userID, Email: "amina@example.com", Role: entity.RoleCustomer}

	t.Run("attaches the resolved user", func(t *testing.T) {
		tokenSvc := new(mocks.TokenService)
		userRepo := new(mocks.UserRepository)
		m := NewAuthMiddleware(tokenSvc, userRepo)

		tokenSvc.On("ValidateAccessToken", "valid-token").
			Return(&service.Claims{UserID: userID, Type: "access"}, nil)
		userRepo.On("FindByID", mock.Anything, userID).Return(storedUser, nil)

		rec := httptest.NewRecorder()
		c := e.NewContext(authRequest("Bearer valid-token"), rec)

		err := m.Authenticate(func(c echo.Context) error {
			user, ok := CurrentUser(c)
			require.True(t, ok)
			assert.Equal(t, userID, user.ID)

			return c.String(http.StatusOK, "ok")
		})(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		m := NewAuthMiddleware(new(mocks.TokenService), new(mocks.UserRepository))

		rec := httptest.NewRecorder()
		c := e.NewContext(authRequest(""), rec)

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-bearer header is unauthorized", func(t *testing.T) {
		m := NewAuthMiddleware(new(mocks.TokenService), new(mocks.UserRepository))

		rec := httptest.NewRecorder()
		c := e.NewContext(authRequest("Basic dXNlcjpwYXNz"), rec)

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token is unauthorized", func(t *testing.T) {
		tokenSvc := new(mocks.TokenService)
		m := NewAuthMiddleware(tokenSvc, new(mocks.UserRepository))

		tokenSvc.On("ValidateAccessToken", "bad-token").Return(nil, errors.New("bad signature"))

		rec := httptest.NewRecorder()
		c := e.NewContext(authRequest("Bearer bad-token"), rec)

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deleted account is rejected despite a live token", func(t *testing.T) {
		tokenSvc := new(mocks.TokenService)
		userRepo := new(mocks.UserRepository)
		m := NewAuthMiddleware(tokenSvc, userRepo)

		tokenSvc.On("ValidateAccessToken", "valid-token").
			Return(&service.Claims{UserID: userID, Type: "access"}, nil)
		userRepo.On("FindByID", mock.Anything, userID).Return(nil, repository.ErrUserNotFound)

		rec := httptest.NewRecorder()
		c := e.NewContext(authRequest("Bearer valid-token"), rec)

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Account no longer exists")
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	e := echo.New()
	m := NewAuthMiddleware(new(mocks.TokenService), new(mocks.UserRepository))

	t.Run("admin passes the admin gate", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/products", nil), rec)
		c.Set(ContextKeyUser, &entity.User{ID: uuid.New(), Role: entity.RoleAdmin})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/products", nil), rec)
		c.Set(ContextKeyUser, &entity.User{ID: uuid.New(), Role: entity.RoleCustomer})

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated request is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/api/products", nil), rec)

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
