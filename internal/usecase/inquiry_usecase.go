package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	ws "findhere/internal/infrastructure/websocket"
	"findhere/pkg/errors"
	"findhere/pkg/logger"
)

const MaxInquiryLength = 1000

// Notifier pushes real-time events to a connected user.
type Notifier interface {
	Notify(userID, msgType string, data interface{}) bool
}

type InquiryUseCase struct {
	inquiryRepo repository.InquiryRepository
	listingRepo repository.ListingRepository
	notifier    Notifier
}

// NewInquiryUseCase wires inquiries. notifier may be nil.
func NewInquiryUseCase(
	inquiryRepo repository.InquiryRepository,
	listingRepo repository.ListingRepository,
	notifier Notifier,
) *InquiryUseCase {
	return &InquiryUseCase{
		inquiryRepo: inquiryRepo,
		listingRepo: listingRepo,
		notifier:    notifier,
	}
}

type InquiryNotification struct {
	Inquiry      *entity.Inquiry `json:"inquiry"`
	ListingTitle string          `json:"listing_title,omitempty"`
}

func (uc *InquiryUseCase) notify(userID, msgType string, payload InquiryNotification) {
	if uc.notifier == nil {
		return
	}
	if !uc.notifier.Notify(userID, msgType, payload) {
		logger.Debug("user %s offline, %s notification not delivered", userID, msgType)
	}
}

func (uc *InquiryUseCase) Create(ctx context.Context, buyerID, listingID, message string) (*entity.Inquiry, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, errors.BadRequest("Message is required", nil)
	}
	if utf8.RuneCountInString(message) > MaxInquiryLength {
		return nil, errors.BadRequest("Message must be at most 1000 characters", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.UserID == buyerID {
		return nil, errors.BadRequest("Cannot send an inquiry about your own listing", nil)
	}
	if listing.Status != entity.ListingStatusActive {
		return nil, errors.BadRequest("Listing is no longer available", nil)
	}

	inquiry := &entity.Inquiry{
		ListingID: listingID,
		BuyerID:   buyerID,
		SellerID:  listing.UserID,
		Message:   message,
		Status:    entity.InquiryStatusPending,
	}
	if err := uc.inquiryRepo.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	uc.notify(listing.UserID, ws.MessageTypeInquiry, InquiryNotification{
		Inquiry:      inquiry,
		ListingTitle: listing.Title,
	})

	return inquiry, nil
}

func (uc *InquiryUseCase) Received(ctx context.Context, sellerID string) ([]*entity.Inquiry, error) {
	return uc.inquiryRepo.ListBySeller(ctx, sellerID)
}

func (uc *InquiryUseCase) Sent(ctx context.Context, buyerID string) ([]*entity.Inquiry, error) {
	return uc.inquiryRepo.ListByBuyer(ctx, buyerID)
}

// UpdateStatus is reserved for the seller; the buyer is told about the change.
func (uc *InquiryUseCase) UpdateStatus(ctx context.Context, sellerID, id, status string) (*entity.Inquiry, error) {
	switch status {
	case entity.InquiryStatusPending, entity.InquiryStatusResponded, entity.InquiryStatusClosed:
	default:
		return nil, errors.BadRequest("Status must be pending, responded or closed", nil)
	}

	inquiry, err := uc.inquiryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inquiry.SellerID != sellerID {
		return nil, errors.Forbidden("Only the seller can update this inquiry", nil)
	}

	if err := uc.inquiryRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	inquiry.Status = status

	uc.notify(inquiry.BuyerID, ws.MessageTypeInquiryStatus, InquiryNotification{Inquiry: inquiry})
	return inquiry, nil
}
