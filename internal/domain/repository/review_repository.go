package repository

import (
	"context"

	"findhere/internal/domain/entity"
)

type ReviewRepository interface {
	// Create returns a CONFLICT error when the reviewer already reviewed the listing.
	Create(ctx context.Context, review *entity.Review) error
	// ListByReviewedUser returns reviews about userID, most recent first.
	ListByReviewedUser(ctx context.Context, userID string) ([]*entity.Review, error)
}
