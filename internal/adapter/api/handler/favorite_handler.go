package handler

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/middleware"
	"findhere/internal/usecase"
	"findhere/pkg/errors"
	"findhere/pkg/response"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	listingID := c.Param("listingId")
	if listingID == "" {
		return response.Error(c, errors.BadRequest("Listing ID is required", nil))
	}

	favorite, err := h.favoriteUseCase.Add(c.Request().Context(), middleware.UserID(c), listingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, favorite)
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	listingID := c.Param("listingId")
	if listingID == "" {
		return response.Error(c, errors.BadRequest("Listing ID is required", nil))
	}

	if err := h.favoriteUseCase.Remove(c.Request().Context(), middleware.UserID(c), listingID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing removed from favorites",
	})
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.favoriteUseCase.List(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, favorites)
}

func (h *FavoriteHandler) FavoriteStatus(c echo.Context) error {
	ok, err := h.favoriteUseCase.IsFavorite(c.Request().Context(), middleware.UserID(c), c.Param("listingId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{
		"is_favorite": ok,
	})
}
