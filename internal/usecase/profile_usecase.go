package usecase

import (
	"context"
	"strings"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/pkg/errors"
)

// EmailLookup resolves the email of an authenticated user.
type EmailLookup interface {
	Email(ctx context.Context, uid string) (string, error)
}

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	emails      EmailLookup
	cache       CatalogCache
}

// NewProfileUseCase wires profiles. emails and cache may be nil.
func NewProfileUseCase(profileRepo repository.ProfileRepository, emails EmailLookup, cache CatalogCache) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		emails:      emails,
		cache:       cache,
	}
}

type UpdateProfileInput struct {
	FirstName string `json:"first_name" validate:"max=60"`
	LastName  string `json:"last_name" validate:"max=60"`
	Location  string `json:"location" validate:"max=200"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

// Get returns the caller's profile. A user who never saved one gets an empty
// profile instead of a 404.
func (uc *ProfileUseCase) Get(ctx context.Context, uid string) (*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, errors.CodeNotFound) {
		return nil, err
	}

	profile = &entity.Profile{ID: uid}
	if uc.emails != nil {
		if email, err := uc.emails.Email(ctx, uid); err == nil {
			profile.Email = email
		}
	}
	return profile, nil
}

func (uc *ProfileUseCase) Update(ctx context.Context, uid string, input UpdateProfileInput) (*entity.Profile, error) {
	profile, err := uc.Get(ctx, uid)
	if err != nil {
		return nil, err
	}

	profile.FirstName = strings.TrimSpace(input.FirstName)
	profile.LastName = strings.TrimSpace(input.LastName)
	profile.Location = strings.TrimSpace(input.Location)
	profile.AvatarURL = strings.TrimSpace(input.AvatarURL)

	if err := uc.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// Seller names are baked into cached catalog snapshots.
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
	return profile, nil
}
