package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		doc := r.client.Collection(listingsCollection).NewDoc()
		listing.ID = doc.ID
	}

	now := time.Now()
	if listing.CreatedAt.IsZero() {
		listing.CreatedAt = now
	}
	listing.UpdatedAt = now

	_, err := r.client.Collection(listingsCollection).Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection(listingsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}

	return &listing, nil
}

func (r *firestoreListingRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Listing, error) {
	return getByIDs[entity.Listing](ctx, r.client, listingsCollection, ids)
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	listing.UpdatedAt = time.Now()

	_, err := r.client.Collection(listingsCollection).Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.client.Collection(listingsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Listing", err)
		}
		return errors.Internal("Failed to update listing status", err)
	}

	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(listingsCollection).Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}

	return nil
}

func (r *firestoreListingRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection(listingsCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment listing views", err)
	}

	return nil
}

func (r *firestoreListingRepository) ListActive(ctx context.Context) ([]*entity.Listing, error) {
	q := r.client.Collection(listingsCollection).
		Where("status", "==", entity.ListingStatusActive).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Listing](ctx, q, "listings")
}

func (r *firestoreListingRepository) ListByOwner(ctx context.Context, userID string) ([]*entity.Listing, error) {
	q := r.client.Collection(listingsCollection).
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Listing](ctx, q, "owner listings")
}
