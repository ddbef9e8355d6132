package router

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/handler"
	"findhere/internal/adapter/api/middleware"
	"findhere/internal/infrastructure/ratelimit"
)

func SetupInquiryRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter middleware.Limiter) {
	inquiryHandler := handler.GetInquiryHandler()

	e.POST("/v1/listings/:id/inquiries", inquiryHandler.CreateInquiry,
		authMiddleware.Authenticate,
		middleware.RateLimit(limiter, ratelimit.ActionInquiry),
	)

	inquiries := e.Group("/v1/inquiries")
	inquiries.Use(authMiddleware.Authenticate)
	inquiries.GET("/received", inquiryHandler.ListReceived)
	inquiries.GET("/sent", inquiryHandler.ListSent)
	inquiries.PATCH("/:id/status", inquiryHandler.UpdateStatus)
}
