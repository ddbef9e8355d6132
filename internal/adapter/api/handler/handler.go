package handler

import (
	"findhere/internal/usecase"
)

var (
	browseHandler    *BrowseHandler
	listingHandler   *ListingHandler
	mapHandler       *MapHandler
	favoriteHandler  *FavoriteHandler
	inquiryHandler   *InquiryHandler
	profileHandler   *ProfileHandler
	assistantHandler *AssistantHandler
	paymentHandler   *PaymentHandler
	reviewHandler    *ReviewHandler
)

func Setup(
	browseUseCase *usecase.BrowseUseCase,
	listingUseCase *usecase.ListingUseCase,
	mapUseCase *usecase.MapUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	inquiryUseCase *usecase.InquiryUseCase,
	profileUseCase *usecase.ProfileUseCase,
	assistantUseCase *usecase.AssistantUseCase,
	paymentUseCase *usecase.PaymentUseCase,
	reviewUseCase *usecase.ReviewUseCase,
) {
	browseHandler = NewBrowseHandler(browseUseCase)
	listingHandler = NewListingHandler(listingUseCase)
	mapHandler = NewMapHandler(mapUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	inquiryHandler = NewInquiryHandler(inquiryUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	assistantHandler = NewAssistantHandler(assistantUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
	reviewHandler = NewReviewHandler(reviewUseCase)
}

func GetBrowseHandler() *BrowseHandler {
	return browseHandler
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetMapHandler() *MapHandler {
	return mapHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetInquiryHandler() *InquiryHandler {
	return inquiryHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetAssistantHandler() *AssistantHandler {
	return assistantHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}

func GetReviewHandler() *ReviewHandler {
	return reviewHandler
}
