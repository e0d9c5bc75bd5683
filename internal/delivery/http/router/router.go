// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/router/handler"
	"boutique/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account and session routes
	userGroup := api.Group("/users")
	{
		userGroup.POST("/signup", r.userHandler.SignUp)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.POST("/refreshToken", r.userHandler.RefreshToken)
		userGroup.POST("/logout", r.userHandler.Logout)
		userGroup.POST("/logout/all", r.userHandler.LogoutAll, r.authMiddleware.Authenticate)
	}

	// Catalog routes; reads are public, writes require the admin role.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/search", r.productHandler.Search)
		productGroup.GET("/new-arrivals", r.productHandler.NewArrivals)
		productGroup.GET("/carousel", r.productHandler.Carousel)
		productGroup.GET("/most-selling", r.productHandler.MostSelling)
		productGroup.GET("/category/:category", r.productHandler.ListByCategory)
		productGroup.GET("/tags/:tag", r.productHandler.ListByTag)
		productGroup.GET("/:id", r.productHandler.Get)

		adminOnly := []echo.MiddlewareFunc{
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleAdmin),
		}
		productGroup.POST("", r.productHandler.Create, adminOnly...)
		productGroup.PUT("/update/:id", r.productHandler.Update, adminOnly...)
		productGroup.PATCH("/deactivate/:id", r.productHandler.Deactivate, adminOnly...)
		productGroup.PATCH("/bulk-update", r.productHandler.BulkUpdate, adminOnly...)
	}

	// Cart routes; always scoped to the authenticated user.
	cartGroup := api.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("/add", r.cartHandler.AddItem)
		cartGroup.PUT("/update", r.cartHandler.UpdateItem)
		cartGroup.DELETE("/remove/:productId", r.cartHandler.RemoveItem)
		cartGroup.DELETE("/clear", r.cartHandler.Clear)
	}
}
