package repository

import (
	"context"

	"findhere/internal/domain/entity"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Profile, error)
	Upsert(ctx context.Context, profile *entity.Profile) error
}
