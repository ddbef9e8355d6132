package router

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/handler"
	"findhere/internal/adapter/api/middleware"
	"findhere/internal/infrastructure/ratelimit"
)

func SetupPaymentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter middleware.Limiter) {
	paymentHandler := handler.GetPaymentHandler()

	payments := e.Group("/v1/payments")
	payments.POST("/intent", paymentHandler.CreatePaymentIntent,
		middleware.RateLimitByIP(limiter, ratelimit.ActionPaymentIntent),
		authMiddleware.Authenticate,
	)
}
