package entity

import (
	"time"
)

type Favorite struct {
	ID        string    `json:"id" firestore:"id"`
	UserID    string    `json:"user_id" firestore:"userId"`
	ListingID string    `json:"listing_id" firestore:"listingId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type FavoriteWithListing struct {
	Favorite
	Listing *Listing `json:"listing"`
}
