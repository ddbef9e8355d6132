package usecase

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	ws "findhere/internal/infrastructure/websocket"
	"findhere/pkg/errors"
	"findhere/pkg/logger"
)

const MaxReviewCommentLength = 1000

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	notifier    Notifier
}

// NewReviewUseCase wires seller reviews. notifier may be nil.
func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	listingRepo repository.ListingRepository,
	notifier Notifier,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		notifier:    notifier,
	}
}

type CreateReviewInput struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

// Create records reviewerID's rating of the seller behind listingID.
func (uc *ReviewUseCase) Create(ctx context.Context, reviewerID, listingID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}
	comment := strings.TrimSpace(input.Comment)
	if utf8.RuneCountInString(comment) > MaxReviewCommentLength {
		return nil, errors.BadRequest("Comment must be at most 1000 characters", nil)
	}

	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.UserID == reviewerID {
		return nil, errors.BadRequest("Cannot review your own listing", nil)
	}
	if listing.Status == entity.ListingStatusDraft {
		return nil, errors.BadRequest("Cannot review a draft listing", nil)
	}

	review := &entity.Review{
		ListingID:      listingID,
		ReviewerID:     reviewerID,
		ReviewedUserID: listing.UserID,
		Rating:         input.Rating,
		Comment:        comment,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	if uc.notifier != nil && !uc.notifier.Notify(review.ReviewedUserID, ws.MessageTypeReview, review) {
		logger.Debug("user %s offline, review notification not delivered", review.ReviewedUserID)
	}
	return review, nil
}

// ForUser returns every review about userID with the average rounded to one
// decimal. A user without reviews has an average of 0.
func (uc *ReviewUseCase) ForUser(ctx context.Context, userID string) (*entity.RatingSummary, error) {
	reviews, err := uc.reviewRepo.ListByReviewedUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &entity.RatingSummary{
		UserID:  userID,
		Count:   len(reviews),
		Reviews: reviews,
	}
	if len(reviews) == 0 {
		summary.Reviews = []*entity.Review{}
		return summary, nil
	}

	total := 0
	for _, r := range reviews {
		total += r.Rating
	}
	summary.Average = math.Round(float64(total)/float64(len(reviews))*10) / 10
	return summary, nil
}
