package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/internal/domain/service"
	"findhere/pkg/errors"
	"findhere/pkg/logger"
)

const CodePaymentsNotConfigured = "PAYMENTS_NOT_CONFIGURED"

// MaxPaymentAmount is the largest major-unit amount accepted, the card
// processor's 8-digit ceiling in minor units.
const MaxPaymentAmount = 999999.99

type PaymentUseCase struct {
	payments        service.PaymentIntentCreator
	orderRepo       repository.OrderRepository
	listingRepo     repository.ListingRepository
	defaultCurrency string
}

// NewPaymentUseCase wires payments. payments is nil when no provider key is set.
func NewPaymentUseCase(
	payments service.PaymentIntentCreator,
	orderRepo repository.OrderRepository,
	listingRepo repository.ListingRepository,
	defaultCurrency string,
) *PaymentUseCase {
	if defaultCurrency == "" {
		defaultCurrency = "inr"
	}
	return &PaymentUseCase{
		payments:        payments,
		orderRepo:       orderRepo,
		listingRepo:     listingRepo,
		defaultCurrency: strings.ToLower(defaultCurrency),
	}
}

type CreatePaymentIntentInput struct {
	Amount          float64    `json:"amount"`
	Currency        string     `json:"currency"`
	ProductID       string     `json:"product_id"`
	SellerID        string     `json:"seller_id"`
	RentalStartDate *time.Time `json:"rental_start_date"`
	RentalEndDate   *time.Time `json:"rental_end_date"`
}

type PaymentIntentResult struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
	OrderID         string `json:"order_id,omitempty"`
}

// ToMinorUnits converts a major-unit amount to the smallest currency unit.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (uc *PaymentUseCase) CreateIntent(ctx context.Context, buyerID string, input CreatePaymentIntentInput) (*PaymentIntentResult, error) {
	if input.Amount <= 0 || math.IsNaN(input.Amount) || input.ProductID == "" || input.SellerID == "" || buyerID == "" {
		return nil, errors.BadRequest("Missing required fields", nil)
	}
	if input.Amount > MaxPaymentAmount {
		return nil, errors.BadRequest("Amount must be at most 999999.99", nil)
	}
	if uc.payments == nil {
		return nil, errors.NotConfigured(CodePaymentsNotConfigured, "Payments are not configured", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if listing.UserID != input.SellerID {
		return nil, errors.BadRequest("Seller does not own this listing", nil)
	}
	if listing.UserID == buyerID {
		return nil, errors.BadRequest("Cannot pay for your own listing", nil)
	}
	if listing.Status != entity.ListingStatusActive {
		return nil, errors.BadRequest("Listing is no longer available", nil)
	}

	currency := strings.ToLower(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = uc.defaultCurrency
	}

	intent, err := uc.payments.CreatePaymentIntent(ctx, service.PaymentIntentRequest{
		AmountMinor: ToMinorUnits(input.Amount),
		Currency:    currency,
		ProductID:   input.ProductID,
		BuyerID:     buyerID,
		SellerID:    input.SellerID,
	})
	if err != nil {
		return nil, errors.Internal("Failed to create payment intent", err)
	}

	result := &PaymentIntentResult{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}

	order := &entity.Order{
		ListingID:       input.ProductID,
		BuyerID:         buyerID,
		SellerID:        input.SellerID,
		Amount:          input.Amount,
		Currency:        currency,
		PaymentMethod:   "card",
		PaymentIntentID: intent.ID,
		Status:          entity.OrderStatusPending,
		RentalStartDate: input.RentalStartDate,
		RentalEndDate:   input.RentalEndDate,
	}
	// The intent already exists upstream, so a failed order write is logged
	// rather than surfaced.
	if err := uc.orderRepo.Create(ctx, order); err != nil {
		logger.Error("failed to record order for payment intent %s: %v", intent.ID, err)
	} else {
		result.OrderID = order.ID
	}

	return result, nil
}
