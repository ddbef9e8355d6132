package handler

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/middleware"
	"findhere/internal/usecase"
	"findhere/pkg/errors"
	"findhere/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req usecase.CreateReviewInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.Create(c.Request().Context(), middleware.UserID(c), c.Param("id"), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, review)
}

// ListUserReviews is public: buyers check a seller's rating before contacting them.
func (h *ReviewHandler) ListUserReviews(c echo.Context) error {
	userID := c.Param("id")
	if userID == "" {
		return response.Error(c, errors.BadRequest("User ID is required", nil))
	}

	summary, err := h.reviewUseCase.ForUser(c.Request().Context(), userID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summary)
}
