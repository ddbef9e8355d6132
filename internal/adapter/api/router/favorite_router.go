package router

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/handler"
	"findhere/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.GET("", favoriteHandler.ListFavorites)
	favorites.POST("/:listingId", favoriteHandler.AddFavorite)
	favorites.DELETE("/:listingId", favoriteHandler.RemoveFavorite)
	favorites.GET("/:listingId/status", favoriteHandler.FavoriteStatus)
}
