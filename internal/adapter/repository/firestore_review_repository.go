package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/pkg/errors"
)

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{client: client}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	// One review per reviewer and listing: the pair is the document id.
	if review.ListingID != "" {
		review.ID = review.ReviewerID + "_" + review.ListingID
	} else {
		review.ID = uuid.New().String()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(reviewsCollection).Doc(review.ID).Create(ctx, review)
	if err != nil {
		if isAlreadyExists(err) {
			return errors.Conflict("You have already reviewed this listing")
		}
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) ListByReviewedUser(ctx context.Context, userID string) ([]*entity.Review, error) {
	q := r.client.Collection(reviewsCollection).
		Where("reviewedUserId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Review](ctx, q, "reviews")
}
