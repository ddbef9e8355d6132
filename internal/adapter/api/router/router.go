package router

import (
	"github.com/labstack/echo/v4"

	"findhere/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter middleware.Limiter) {
	SetupHealthRouter(e)
	SetupBrowseRouter(e, authMiddleware)
	SetupListingRouter(e, authMiddleware, limiter)
	SetupMapRouter(e)
	SetupFavoriteRouter(e, authMiddleware)
	SetupInquiryRouter(e, authMiddleware, limiter)
	SetupProfileRouter(e, authMiddleware)
	SetupAssistantRouter(e, authMiddleware)
	SetupPaymentRouter(e, authMiddleware, limiter)
	SetupReviewRouter(e, authMiddleware)
}
