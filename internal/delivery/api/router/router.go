// Package router wires the API handlers onto echo routes.
package router

import (
	"vitrine/internal/delivery/api/middleware"
	"vitrine/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler      *handler.ListingHandler
	AdminListingHandler *handler.AdminListingHandler
	AuthHandler         *handler.AuthHandler
	PhotoHandler        *handler.PhotoHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

type router struct {
	listingHandler      *handler.ListingHandler
	adminListingHandler *handler.AdminListingHandler
	authHandler         *handler.AuthHandler
	photoHandler        *handler.PhotoHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler:      params.ListingHandler,
		adminListingHandler: params.AdminListingHandler,
		authHandler:         params.AuthHandler,
		photoHandler:        params.PhotoHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/categories", handler.Categories)

	// Public landing page
	listingsGroup := e.Group("/listings")
	{
		listingsGroup.GET("", r.listingHandler.ListListings)
		listingsGroup.GET("/featured", r.listingHandler.ListFeatured)
		listingsGroup.GET("/:id/qrcode", r.listingHandler.ContactQRCode)
	}

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/google", r.authHandler.GoogleLogin)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Operator back office
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/listings", r.adminListingHandler.ListListings)
		adminGroup.POST("/listings", r.adminListingHandler.CreateListing)
		adminGroup.PATCH("/listings/:id", r.adminListingHandler.UpdateListing)
		adminGroup.DELETE("/listings/:id", r.adminListingHandler.DeleteListing)
		adminGroup.POST("/listings/:id/toggle-status", r.adminListingHandler.ToggleStatus)
		adminGroup.POST("/photos", r.photoHandler.UploadPhotos)
	}
}
