package router

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/handler"
	"findhere/internal/adapter/api/middleware"
)

func SetupBrowseRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	browseHandler := handler.GetBrowseHandler()

	e.GET("/v1/categories", browseHandler.ListCategories)

	listings := e.Group("/v1/listings")
	listings.GET("", browseHandler.ListListings)
	// Owners may open their own drafts, so the viewer is resolved when present.
	listings.GET("/:id", browseHandler.GetListing, authMiddleware.OptionalAuth)
}
