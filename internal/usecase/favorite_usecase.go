package usecase

import (
	"context"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/pkg/errors"
	"findhere/pkg/logger"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	listingRepo  repository.ListingRepository
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	listingRepo repository.ListingRepository,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		listingRepo:  listingRepo,
	}
}

func (uc *FavoriteUseCase) Add(ctx context.Context, userID, listingID string) (*entity.Favorite, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if listing.UserID == userID {
		return nil, errors.BadRequest("Cannot add your own listing to favorites", nil)
	}
	if listing.Status != entity.ListingStatusActive {
		return nil, errors.BadRequest("Cannot add an inactive listing to favorites", nil)
	}

	favorite := &entity.Favorite{
		UserID:    userID,
		ListingID: listingID,
	}
	if err := uc.favoriteRepo.Add(ctx, favorite); err != nil {
		return nil, err
	}

	logger.Debug("listing %s favorited by %s", listingID, userID)
	return favorite, nil
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, listingID string) error {
	return uc.favoriteRepo.Remove(ctx, userID, listingID)
}

func (uc *FavoriteUseCase) IsFavorite(ctx context.Context, userID, listingID string) (bool, error) {
	return uc.favoriteRepo.Exists(ctx, userID, listingID)
}

// List returns the user's favorites whose listing still exists and is active,
// most recent first.
func (uc *FavoriteUseCase) List(ctx context.Context, userID string) ([]entity.FavoriteWithListing, error) {
	favorites, err := uc.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(favorites) == 0 {
		return []entity.FavoriteWithListing{}, nil
	}

	ids := make([]string, len(favorites))
	for i, f := range favorites {
		ids[i] = f.ListingID
	}

	listings, err := uc.listingRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]entity.FavoriteWithListing, 0, len(favorites))
	for _, f := range favorites {
		listing, ok := listings[f.ListingID]
		if !ok || listing.Status != entity.ListingStatusActive {
			continue
		}
		out = append(out, entity.FavoriteWithListing{Favorite: *f, Listing: listing})
	}
	return out, nil
}
