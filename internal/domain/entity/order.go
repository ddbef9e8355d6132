package entity

import (
	"time"
)

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusFailed  = "failed"
)

// Order records a payment intent created for a listing purchase or rental.
type Order struct {
	ID              string     `json:"id" firestore:"id"`
	ListingID       string     `json:"listing_id" firestore:"listingId"`
	BuyerID         string     `json:"buyer_id" firestore:"buyerId"`
	SellerID        string     `json:"seller_id" firestore:"sellerId"`
	Amount          float64    `json:"amount" firestore:"amount"`
	Currency        string     `json:"currency" firestore:"currency"`
	PaymentMethod   string     `json:"payment_method" firestore:"paymentMethod"`
	PaymentIntentID string     `json:"payment_intent_id" firestore:"paymentIntentId"`
	Status          string     `json:"status" firestore:"status"`
	RentalStartDate *time.Time `json:"rental_start_date,omitempty" firestore:"rentalStartDate,omitempty"`
	RentalEndDate   *time.Time `json:"rental_end_date,omitempty" firestore:"rentalEndDate,omitempty"`
	CreatedAt       time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time  `json:"updated_at" firestore:"updatedAt"`
}
