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

type firestoreInquiryRepository struct {
	client *firestore.Client
}

func NewFirestoreInquiryRepository(client *firestore.Client) repository.InquiryRepository {
	return &firestoreInquiryRepository{
		client: client,
	}
}

func (r *firestoreInquiryRepository) Create(ctx context.Context, inquiry *entity.Inquiry) error {
	if inquiry.ID == "" {
		inquiry.ID = uuid.New().String()
	}

	now := time.Now()
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	_, err := r.client.Collection(inquiriesCollection).Doc(inquiry.ID).Set(ctx, inquiry)
	if err != nil {
		return errors.Internal("Failed to create inquiry", err)
	}

	return nil
}

func (r *firestoreInquiryRepository) GetByID(ctx context.Context, id string) (*entity.Inquiry, error) {
	doc, err := r.client.Collection(inquiriesCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Inquiry", err)
		}
		return nil, errors.Internal("Failed to get inquiry", err)
	}

	var inquiry entity.Inquiry
	if err := doc.DataTo(&inquiry); err != nil {
		return nil, errors.Internal("Failed to parse inquiry data", err)
	}

	return &inquiry, nil
}

func (r *firestoreInquiryRepository) ListBySeller(ctx context.Context, sellerID string) ([]*entity.Inquiry, error) {
	q := r.client.Collection(inquiriesCollection).
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Inquiry](ctx, q, "received inquiries")
}

func (r *firestoreInquiryRepository) ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Inquiry, error) {
	q := r.client.Collection(inquiriesCollection).
		Where("buyerId", "==", buyerID).
		OrderBy("createdAt", firestore.Desc)

	return collect[entity.Inquiry](ctx, q, "sent inquiries")
}

func (r *firestoreInquiryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	_, err := r.client.Collection(inquiriesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: status},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Inquiry", err)
		}
		return errors.Internal("Failed to update inquiry status", err)
	}

	return nil
}
