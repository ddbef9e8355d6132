package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"findhere/internal/domain/entity"
	"findhere/internal/usecase"
)

func newReviewHandler() (*ReviewHandler, *memReviews) {
	reviews := &memReviews{}
	listings := newMemListings(listing("desk", 800, 0, 28.7041, 77.1025))
	return NewReviewHandler(usecase.NewReviewUseCase(reviews, listings, nil)), reviews
}

func TestCreateReviewAndSummary(t *testing.T) {
	h, _ := newReviewHandler()

	c, rec := newContext(http.MethodPost, "/v1/listings/desk/reviews", `{"rating":5,"comment":"Great seller"}`)
	c.SetParamNames("id")
	c.SetParamValues("desk")
	c.Set("uid", "bob")

	require.NoError(t, h.CreateReview(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	c, rec = newContext(http.MethodGet, "/v1/users/alice/reviews", "")
	c.SetParamNames("id")
	c.SetParamValues("alice")

	require.NoError(t, h.ListUserReviews(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var summary entity.RatingSummary
	decode(t, rec, &summary)
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, 5.0, summary.Average)
	require.Len(t, summary.Reviews, 1)
	assert.Equal(t, "Great seller", summary.Reviews[0].Comment)
}

func TestCreateReviewRatingOutOfRange(t *testing.T) {
	h, reviews := newReviewHandler()

	c, rec := newContext(http.MethodPost, "/v1/listings/desk/reviews", `{"rating":9}`)
	c.SetParamNames("id")
	c.SetParamValues("desk")
	c.Set("uid", "bob")

	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode(t, rec, nil).Error.Code)
	assert.Empty(t, reviews.reviews)
}
