package handler

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/middleware"
	"findhere/internal/usecase"
	"findhere/pkg/errors"
	"findhere/pkg/response"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req usecase.ListingInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Create(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) ListMyListings(c echo.Context) error {
	listings, err := h.listingUseCase.ListMine(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listings)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var req usecase.ListingInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Update(c.Request().Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) UpdateListingStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.UpdateStatus(c.Request().Context(), middleware.UserID(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	if err := h.listingUseCase.Delete(c.Request().Context(), middleware.UserID(c), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Listing deleted successfully",
	})
}

// UploadImage expects a multipart form with the photo in the "image" field.
func (h *ListingHandler) UploadImage(c echo.Context) error {
	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid image", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Unable to read image", err))
	}
	defer src.Close()

	url, err := h.listingUseCase.UploadImage(
		c.Request().Context(),
		middleware.UserID(c),
		src,
		file.Header.Get("Content-Type"),
		file.Size,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"url": url,
	})
}
