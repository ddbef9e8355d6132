package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/pkg/errors"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{client: client}
}

// favoriteID makes (user, listing) unique without a separate index.
func favoriteID(userID, listingID string) string {
	return fmt.Sprintf("%s_%s", userID, listingID)
}

func (r *firestoreFavoriteRepository) Add(ctx context.Context, favorite *entity.Favorite) error {
	favorite.ID = favoriteID(favorite.UserID, favorite.ListingID)
	if favorite.CreatedAt.IsZero() {
		favorite.CreatedAt = time.Now()
	}

	// Create fails with AlreadyExists instead of silently overwriting.
	_, err := r.client.Collection(favoritesCollection).Doc(favorite.ID).Create(ctx, favorite)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("Listing already in favorites")
		}
		return errors.Internal("Failed to add favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Remove(ctx context.Context, userID, listingID string) error {
	ref := r.client.Collection(favoritesCollection).Doc(favoriteID(userID, listingID))

	_, err := ref.Delete(ctx, firestore.Exists)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Favorite", err)
		}
		return errors.Internal("Failed to remove favorite", err)
	}

	return nil
}

func (r *firestoreFavoriteRepository) Exists(ctx context.Context, userID, listingID string) (bool, error) {
	doc, err := r.client.Collection(favoritesCollection).Doc(favoriteID(userID, listingID)).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return false, nil
		}
		return false, errors.Internal("Failed to check favorite", err)
	}

	return doc.Exists(), nil
}

func (r *firestoreFavoriteRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Favorite, error) {
	q := r.client.Collection(favoritesCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Favorite](ctx, q, "favorites")
}
