package handler

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/middleware"
	"findhere/internal/usecase"
	"findhere/pkg/errors"
	"findhere/pkg/response"
)

type PaymentHandler struct {
	paymentUseCase *usecase.PaymentUseCase
}

func NewPaymentHandler(paymentUseCase *usecase.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
	}
}

func (h *PaymentHandler) CreatePaymentIntent(c echo.Context) error {
	var req usecase.CreatePaymentIntentInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Missing required fields", err))
	}

	result, err := h.paymentUseCase.CreateIntent(c.Request().Context(), middleware.UserID(c), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}
