package router

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/handler"
	"findhere/internal/adapter/api/middleware"
	"findhere/internal/infrastructure/ratelimit"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter middleware.Limiter) {
	listingHandler := handler.GetListingHandler()

	myListings := e.Group("/v1/my-listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.GET("", listingHandler.ListMyListings)
	myListings.POST("", listingHandler.CreateListing)
	myListings.POST("/images", listingHandler.UploadImage, middleware.RateLimit(limiter, ratelimit.ActionImageUpload))
	myListings.PUT("/:id", listingHandler.UpdateListing)
	myListings.PATCH("/:id/status", listingHandler.UpdateListingStatus)
	myListings.DELETE("/:id", listingHandler.DeleteListing)
}
