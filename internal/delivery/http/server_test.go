package http

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boutique/config"
	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/router"
	"boutique/internal/delivery/http/router/handler"
	"boutique/internal/mocks"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newServerFixture(t *testing.T) *httpServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg := &config.Config{}
	cfg.HTTP.Port = 8080
	cfg.HTTP.MaxRequestBodySize = "2MB"

	routerParams := router.RouterParams{
		UserHandler:    handler.NewUserHandler(new(mocks.AuthUsecase), logger),
		ProductHandler: handler.NewProductHandler(new(mocks.ProductUsecase), logger),
		CartHandler:    handler.NewCartHandler(new(mocks.CartUsecase), logger),
		AuthMiddleware: middleware.NewAuthMiddleware(new(mocks.TokenService), new(mocks.UserRepository)),
	}

	srv, err := NewServer(ServerParams{
		Lc:              fxtest.NewLifecycle(t),
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: middleware.NewErrorMiddleware(logger),
		RouterParams:    routerParams,
	})
	require.NoError(t, err)

	httpSrv, ok := srv.(*httpServer)
	require.True(t, ok)

	return httpSrv
}

func TestNewServer(t *testing.T) {
	srv := newServerFixture(t)

	t.Run("health endpoint responds", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("handler errors surface through the envelope", func(t *testing.T) {
		body := `{"username":"","email":"not-an-email","password":"x","confirmPassword":"y"}`
		req := httptest.NewRequest(http.MethodPost, "/api/users/signup", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		srv.server.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
		assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	})

	t.Run("unknown routes get the envelope too", func(t *testing.T) {
		rec := httptest.NewRecorder()
		srv.server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})
}
