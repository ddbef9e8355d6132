package repository

import (
	"context"

	"cloud.google.com/go/firestore"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/pkg/errors"
)

type firestoreCategoryRepository struct {
	client *firestore.Client
}

func NewFirestoreCategoryRepository(client *firestore.Client) repository.CategoryRepository {
	return &firestoreCategoryRepository{
		client: client,
	}
}

func (r *firestoreCategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	doc, err := r.client.Collection(categoriesCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Category", err)
		}
		return nil, errors.Internal("Failed to get category", err)
	}

	var category entity.Category
	if err := doc.DataTo(&category); err != nil {
		return nil, errors.Internal("Failed to parse category data", err)
	}

	return &category, nil
}

func (r *firestoreCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	q := r.client.Collection(categoriesCollection).OrderBy("name", firestore.Asc)
	return collect[entity.Category](ctx, q, "categories")
}
