package entity

import (
	"time"
)

type Profile struct {
	ID        string    `json:"id" firestore:"id"`
	Email     string    `json:"email" firestore:"email"`
	FirstName string    `json:"first_name" firestore:"firstName"`
	LastName  string    `json:"last_name" firestore:"lastName"`
	Location  string    `json:"location,omitempty" firestore:"location,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty" firestore:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (p *Profile) SellerProfile() *SellerProfile {
	if p == nil {
		return nil
	}
	return &SellerProfile{FirstName: p.FirstName, LastName: p.LastName}
}
