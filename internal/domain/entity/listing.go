package entity

import (
	"time"
)

const (
	ListingTypeSell     = "sell"
	ListingTypeRent     = "rent"
	ListingTypeExchange = "exchange"
)

const (
	ListingStatusActive = "active"
	ListingStatusSold   = "sold"
	ListingStatusDraft  = "draft"
)

// SellerProfile is the denormalized owner name attached at read time. It is
// never persisted on the listing document.
type SellerProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Listing struct {
	ID          string  `json:"id" firestore:"id"`
	UserID      string  `json:"user_id" firestore:"userId"`
	Title       string  `json:"title" firestore:"title"`
	Description string  `json:"description,omitempty" firestore:"description,omitempty"`
	Condition   string  `json:"condition,omitempty" firestore:"condition,omitempty"`
	CategoryID  *string `json:"category_id" firestore:"categoryId"`

	// Price is nil for free listings.
	Price       *float64 `json:"price" firestore:"price"`
	IsFree      bool     `json:"is_free" firestore:"isFree"`
	ListingType string   `json:"listing_type" firestore:"listingType"`

	Location  string   `json:"location,omitempty" firestore:"location,omitempty"`
	Latitude  *float64 `json:"latitude" firestore:"latitude"`
	Longitude *float64 `json:"longitude" firestore:"longitude"`

	Images []string `json:"images" firestore:"images"`
	Status string   `json:"status" firestore:"status"`
	Views  int      `json:"views" firestore:"views"`

	AvailableFrom *time.Time `json:"available_from,omitempty" firestore:"availableFrom,omitempty"`
	AvailableTo   *time.Time `json:"available_to,omitempty" firestore:"availableTo,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	Seller *SellerProfile `json:"profiles" firestore:"-"`
}

// HasCoordinates reports whether both halves of the coordinate pair are set.
func (l *Listing) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// PrimaryImage returns the first image URL, or "" when there are none.
func (l *Listing) PrimaryImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}

// WithSeller returns a shallow copy carrying the given seller profile.
func (l *Listing) WithSeller(seller *SellerProfile) *Listing {
	cp := *l
	cp.Seller = seller
	return &cp
}

type Category struct {
	ID        string    `json:"id" firestore:"id"`
	Name      string    `json:"name" firestore:"name"`
	Icon      string    `json:"icon,omitempty" firestore:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
