package repository

import (
	"context"

	"findhere/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByBuyer(ctx context.Context, buyerID string) ([]*entity.Order, error)
}
