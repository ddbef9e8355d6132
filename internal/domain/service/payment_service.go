package service

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type PaymentIntentRequest struct {
	// AmountMinor is in the currency's smallest unit (paise, cents).
	AmountMinor int64
	Currency    string
	ProductID   string
	BuyerID     string
	SellerID    string
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
}

type PaymentIntentCreator interface {
	CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error)
}

type StripePaymentService struct {
	api *client.API
}

// NewStripePaymentService builds a client for secretKey. backendURL overrides
// the Stripe API host and is only set in tests.
func NewStripePaymentService(secretKey, backendURL string) *StripePaymentService {
	var backends *stripe.Backends
	if backendURL != "" {
		backends = &stripe.Backends{
			API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
				URL:               stripe.String(backendURL),
				MaxNetworkRetries: stripe.Int64(0),
			}),
		}
	}

	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripePaymentService{api: api}
}

func (s *StripePaymentService) CreatePaymentIntent(ctx context.Context, req PaymentIntentRequest) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(req.AmountMinor),
		Currency: stripe.String(req.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("productId", req.ProductID)
	params.AddMetadata("buyerId", req.BuyerID)
	params.AddMetadata("sellerId", req.SellerID)

	pi, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return &PaymentIntent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}
