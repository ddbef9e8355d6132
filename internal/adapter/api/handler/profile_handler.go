package handler

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/middleware"
	"findhere/internal/usecase"
	"findhere/pkg/errors"
	"findhere/pkg/response"
)

type ProfileHandler struct {
	profileUseCase *usecase.ProfileUseCase
}

func NewProfileHandler(profileUseCase *usecase.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: profileUseCase,
	}
}

func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUseCase.Get(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}

func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	profile, err := h.profileUseCase.Update(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profile)
}
