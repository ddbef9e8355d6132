package entity

import (
	"time"
)

const (
	InquiryStatusPending   = "pending"
	InquiryStatusResponded = "responded"
	InquiryStatusClosed    = "closed"
)

// Inquiry is a buyer's message to the owner of a listing.
type Inquiry struct {
	ID        string    `json:"id" firestore:"id"`
	ListingID string    `json:"listing_id" firestore:"listingId"`
	BuyerID   string    `json:"buyer_id" firestore:"buyerId"`
	SellerID  string    `json:"seller_id" firestore:"sellerId"`
	Message   string    `json:"message" firestore:"message"`
	Status    string    `json:"status" firestore:"status"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
