package usecase

import (
	"context"
	"time"

	"findhere/internal/domain/discovery"
	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/pkg/errors"
	"findhere/pkg/logger"
	"findhere/pkg/utils"
)

// CatalogCache holds the last composed catalog. Implementations must treat
// their own failures as misses.
type CatalogCache interface {
	Get(ctx context.Context) (*entity.Catalog, bool)
	Set(ctx context.Context, catalog *entity.Catalog)
	Invalidate(ctx context.Context)
}

type BrowseUseCase struct {
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
	profileRepo  repository.ProfileRepository
	cache        CatalogCache
}

// NewBrowseUseCase wires the catalog sources. cache may be nil.
func NewBrowseUseCase(
	listingRepo repository.ListingRepository,
	categoryRepo repository.CategoryRepository,
	profileRepo repository.ProfileRepository,
	cache CatalogCache,
) *BrowseUseCase {
	return &BrowseUseCase{
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		profileRepo:  profileRepo,
		cache:        cache,
	}
}

// LoadCatalog composes active listings (newest first, seller attached) and
// categories (by name). A failing source is logged and contributes an empty
// collection; LoadCatalog itself never fails.
func (uc *BrowseUseCase) LoadCatalog(ctx context.Context) *entity.Catalog {
	if uc.cache != nil {
		if catalog, ok := uc.cache.Get(ctx); ok {
			return catalog
		}
	}

	complete := true

	listings, err := uc.listingRepo.ListActive(ctx)
	if err != nil {
		logger.Error("failed to load listings: %v", err)
		listings = []*entity.Listing{}
		complete = false
	}

	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("failed to load categories: %v", err)
		categories = []*entity.Category{}
		complete = false
	}

	catalog := &entity.Catalog{
		Listings:   uc.attachSellers(ctx, listings),
		Categories: categories,
	}

	// Only cache snapshots that are not missing a whole source.
	if uc.cache != nil && complete {
		uc.cache.Set(ctx, catalog)
	}
	return catalog
}

func (uc *BrowseUseCase) attachSellers(ctx context.Context, listings []*entity.Listing) []*entity.Listing {
	ids := make([]string, 0, len(listings))
	for _, l := range listings {
		ids = append(ids, l.UserID)
	}

	profiles, err := uc.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Warn("failed to load seller profiles: %v", err)
		profiles = nil
	}

	out := make([]*entity.Listing, len(listings))
	for i, l := range listings {
		out[i] = l.WithSeller(profiles[l.UserID].SellerProfile())
	}
	return out
}

type BrowseInput struct {
	Params   discovery.Params
	Page     int
	PageSize int
}

// ValidateParams rejects enumeration values the pipeline does not know.
// Empty values are allowed and mean "default".
func ValidateParams(p discovery.Params) error {
	if p.PriceRange != "" && !p.PriceRange.Valid() {
		return errors.BadRequest("Invalid price range: "+string(p.PriceRange), nil)
	}
	if p.Sort != "" && !p.Sort.Valid() {
		return errors.BadRequest("Invalid sort: "+string(p.Sort), nil)
	}
	switch p.Type {
	case "", discovery.All, discovery.TypeFree,
		entity.ListingTypeSell, entity.ListingTypeRent, entity.ListingTypeExchange:
	default:
		return errors.BadRequest("Invalid listing type: "+p.Type, nil)
	}
	return nil
}

// Browse runs the discovery pipeline over a fresh catalog and returns one page
// plus the total number of matches.
func (uc *BrowseUseCase) Browse(ctx context.Context, input BrowseInput) ([]*entity.Listing, int64, error) {
	if err := ValidateParams(input.Params); err != nil {
		return nil, 0, err
	}

	catalog := uc.LoadCatalog(ctx)
	matches := discovery.Apply(catalog.Listings, input.Params)

	page := utils.Paginate(matches, utils.NewPaginationParams(input.Page, input.PageSize))
	return page, int64(len(matches)), nil
}

func (uc *BrowseUseCase) Categories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetListing returns an active listing, or any listing to its owner. Views
// from anyone but the owner bump the counter in the background.
func (uc *BrowseUseCase) GetListing(ctx context.Context, id, viewerID string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := viewerID != "" && viewerID == listing.UserID
	if listing.Status != entity.ListingStatusActive && !isOwner {
		return nil, errors.NotFound("Listing", nil)
	}

	var seller *entity.SellerProfile
	profile, err := uc.profileRepo.GetByID(ctx, listing.UserID)
	if err == nil {
		seller = profile.SellerProfile()
	} else if !errors.Is(err, errors.CodeNotFound) {
		logger.Warn("failed to load seller %s for listing %s: %v", listing.UserID, id, err)
	}

	if !isOwner {
		go uc.incrementViews(id)
	}

	return listing.WithSeller(seller), nil
}

func (uc *BrowseUseCase) incrementViews(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.listingRepo.IncrementViews(ctx, id); err != nil {
		logger.Warn("failed to increment views for listing %s: %v", id, err)
	}
}
