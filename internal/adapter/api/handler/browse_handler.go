package handler

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/middleware"
	"findhere/internal/domain/discovery"
	"findhere/internal/usecase"
	"findhere/pkg/response"
	"findhere/pkg/utils"
)

type BrowseHandler struct {
	browseUseCase *usecase.BrowseUseCase
}

func NewBrowseHandler(browseUseCase *usecase.BrowseUseCase) *BrowseHandler {
	return &BrowseHandler{
		browseUseCase: browseUseCase,
	}
}

// discoveryParams reads the shared filter query parameters. Missing values
// stay empty and are defaulted by the pipeline.
func discoveryParams(c echo.Context) discovery.Params {
	return discovery.Params{
		Query:      c.QueryParam("q"),
		Category:   c.QueryParam("category"),
		Type:       c.QueryParam("type"),
		PriceRange: discovery.PriceRange(c.QueryParam("price")),
		Sort:       discovery.SortKey(c.QueryParam("sort")),
	}
}

func (h *BrowseHandler) ListListings(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	listings, total, err := h.browseUseCase.Browse(c.Request().Context(), usecase.BrowseInput{
		Params:   discoveryParams(c),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *BrowseHandler) GetListing(c echo.Context) error {
	listing, err := h.browseUseCase.GetListing(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *BrowseHandler) ListCategories(c echo.Context) error {
	categories, err := h.browseUseCase.Categories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}
