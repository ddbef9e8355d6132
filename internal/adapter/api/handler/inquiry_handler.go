package handler

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/middleware"
	"findhere/internal/usecase"
	"findhere/pkg/errors"
	"findhere/pkg/response"
)

type InquiryHandler struct {
	inquiryUseCase *usecase.InquiryUseCase
}

func NewInquiryHandler(inquiryUseCase *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{
		inquiryUseCase: inquiryUseCase,
	}
}

type createInquiryRequest struct {
	Message string `json:"message" validate:"required"`
}

func (h *InquiryHandler) CreateInquiry(c echo.Context) error {
	var req createInquiryRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	inquiry, err := h.inquiryUseCase.Create(c.Request().Context(), middleware.UserID(c), c.Param("id"), req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, inquiry)
}

func (h *InquiryHandler) ListReceived(c echo.Context) error {
	inquiries, err := h.inquiryUseCase.Received(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiries)
}

func (h *InquiryHandler) ListSent(c echo.Context) error {
	inquiries, err := h.inquiryUseCase.Sent(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiries)
}

func (h *InquiryHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	inquiry, err := h.inquiryUseCase.UpdateStatus(c.Request().Context(), middleware.UserID(c), c.Param("id"), req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, inquiry)
}
