// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	CatalogHandler *handler.CatalogHandler
	CartHandler    *handler.CartHandler
	ReviewHandler  *handler.ReviewHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	catalogHandler *handler.CatalogHandler
	cartHandler    *handler.CartHandler
	reviewHandler  *handler.ReviewHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		catalogHandler: params.CatalogHandler,
		cartHandler:    params.CartHandler,
		reviewHandler:  params.ReviewHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Storefront browsing, open to everyone
	e.GET("/", r.catalogHandler.Home)
	e.GET("/products", r.catalogHandler.List)
	e.GET("/products/:id", r.catalogHandler.Get)

	// Session cart, no login required
	e.POST("/cart/add/:id", r.cartHandler.Add)
	e.GET("/cart", r.cartHandler.View)
	e.POST("/cart/clear", r.cartHandler.Clear)

	// Reviews require a logged-in customer
	e.POST("/products/:id/review", r.reviewHandler.Add,
		r.authMiddleware.RequireAuth)

	// Product management requires the admin flag
	e.POST("/products/new", r.catalogHandler.Create,
		r.authMiddleware.RequireAuth, r.authMiddleware.RequireAdmin)
	e.POST("/products/edit/:id", r.catalogHandler.Update,
		r.authMiddleware.RequireAuth, r.authMiddleware.RequireAdmin)
	e.POST("/products/delete/:id", r.catalogHandler.Delete,
		r.authMiddleware.RequireAuth, r.authMiddleware.RequireAdmin)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/jwt/login", r.authHandler.Login)
		authGroup.POST("/jwt/logout", r.authHandler.Logout)
	}

	// One-time admin seeding, only routed when enabled in config
	if r.cfg.Admin != nil && r.cfg.Admin.BootstrapEnabled {
		e.GET("/create-admin", r.authHandler.BootstrapAdmin)
	}
}
