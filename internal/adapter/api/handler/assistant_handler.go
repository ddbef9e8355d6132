package handler

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/middleware"
	"findhere/internal/usecase"
	"findhere/pkg/errors"
	"findhere/pkg/response"
)

type AssistantHandler struct {
	assistantUseCase *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

// Chat works for anonymous callers too; only signed-in users get their
// conversation stored.
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req usecase.ChatInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	result, err := h.assistantUseCase.Chat(c.Request().Context(), middleware.UserID(c), c.RealIP(), req)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

func (h *AssistantHandler) ListConversations(c echo.Context) error {
	conversations, err := h.assistantUseCase.ListConversations(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversations)
}

func (h *AssistantHandler) GetConversation(c echo.Context) error {
	conversation, err := h.assistantUseCase.GetConversation(c.Request().Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, conversation)
}
