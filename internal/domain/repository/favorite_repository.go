package repository

import (
	"context"

	"findhere/internal/domain/entity"
)

type FavoriteRepository interface {
	// Add returns a CONFLICT error when the pair is already stored.
	Add(ctx context.Context, favorite *entity.Favorite) error
	Remove(ctx context.Context, userID, listingID string) error
	Exists(ctx context.Context, userID, listingID string) (bool, error)
	// ListByUser returns the user's favorites, most recent first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error)
}
