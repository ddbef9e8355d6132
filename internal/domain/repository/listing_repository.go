package repository

import (
	"context"

	"findhere/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	// GetByIDs silently skips ids that do not exist.
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	// ListActive returns every listing with status active, newest first.
	ListActive(ctx context.Context) ([]*entity.Listing, error)
	ListByOwner(ctx context.Context, userID string) ([]*entity.Listing, error)
}

type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// List returns all categories ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)
}
