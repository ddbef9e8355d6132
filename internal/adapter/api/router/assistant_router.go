package router

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/handler"
	"findhere/internal/adapter/api/middleware"
)

// The chat endpoint rate limits inside the use case, where the caller's
// identity is already resolved.
func SetupAssistantRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	assistantHandler := handler.GetAssistantHandler()

	assistant := e.Group("/v1/assistant")
	assistant.POST("/chat", assistantHandler.Chat, authMiddleware.OptionalAuth)
	assistant.GET("/conversations", assistantHandler.ListConversations, authMiddleware.Authenticate)
	assistant.GET("/conversations/:id", assistantHandler.GetConversation, authMiddleware.Authenticate)
}
