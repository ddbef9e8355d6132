package entity

import (
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a buyer's rating of a seller, optionally tied to the listing that
// brought them together.
type Review struct {
	ID             string    `json:"id" firestore:"id"`
	ListingID      string    `json:"listing_id,omitempty" firestore:"listingId"`
	ReviewerID     string    `json:"reviewer_id" firestore:"reviewerId"`
	ReviewedUserID string    `json:"reviewed_user_id" firestore:"reviewedUserId"`
	Rating         int       `json:"rating" firestore:"rating"`
	Comment        string    `json:"comment,omitempty" firestore:"comment"`
	CreatedAt      time.Time `json:"created_at" firestore:"createdAt"`
}

type RatingSummary struct {
	UserID  string    `json:"user_id"`
	Average float64   `json:"average"`
	Count   int       `json:"count"`
	Reviews []*Review `json:"reviews"`
}
