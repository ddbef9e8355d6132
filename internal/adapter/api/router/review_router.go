package router

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/handler"
	"findhere/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	reviewHandler := handler.GetReviewHandler()

	e.POST("/v1/listings/:id/reviews", reviewHandler.CreateReview, authMiddleware.Authenticate)
	e.GET("/v1/users/:id/reviews", reviewHandler.ListUserReviews)
}
