package repository

import (
	"context"

	"findhere/internal/domain/entity"
)

type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	GetByID(ctx context.Context, id string) (*entity.Inquiry, error)
	ListBySeller(ctx context.Context, sellerID string) ([]*entity.Inquiry, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Inquiry, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
