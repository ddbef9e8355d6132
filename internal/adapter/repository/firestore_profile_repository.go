package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/pkg/errors"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	doc, err := r.client.Collection(profilesCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Profile, error) {
	return getByIDs[entity.Profile](ctx, r.client, profilesCollection, ids)
}

func (r *firestoreProfileRepository) Upsert(ctx context.Context, profile *entity.Profile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.client.Collection(profilesCollection).Doc(profile.ID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to save profile", err)
	}

	return nil
}
