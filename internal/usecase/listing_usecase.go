package usecase

import (
	"context"
	"io"
	"math"
	"strings"
	"time"

	"findhere/internal/domain/entity"
	"findhere/internal/domain/repository"
	"findhere/internal/domain/service"
	"findhere/pkg/errors"
	"findhere/pkg/logger"
)

const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var listingConditions = map[string]bool{
	"new":       true,
	"excellent": true,
	"good":      true,
	"fair":      true,
}

type ListingUseCase struct {
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
	images       service.ImageStorage
	cache        CatalogCache
}

// NewListingUseCase wires listing management. images and cache may be nil.
func NewListingUseCase(
	listingRepo repository.ListingRepository,
	categoryRepo repository.CategoryRepository,
	images service.ImageStorage,
	cache CatalogCache,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo:  listingRepo,
		categoryRepo: categoryRepo,
		images:       images,
		cache:        cache,
	}
}

type ListingInput struct {
	Title         string     `json:"title" validate:"required,max=120"`
	Description   string     `json:"description" validate:"max=2000"`
	Condition     string     `json:"condition" validate:"omitempty,oneof=new excellent good fair"`
	CategoryID    *string    `json:"category_id"`
	Price         *float64   `json:"price" validate:"omitempty,gte=0"`
	IsFree        bool       `json:"is_free"`
	ListingType   string     `json:"listing_type" validate:"required,oneof=sell rent exchange"`
	Location      string     `json:"location" validate:"max=200"`
	Latitude      *float64   `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude     *float64   `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Images        []string   `json:"images" validate:"max=10,dive,url"`
	Status        string     `json:"status" validate:"omitempty,oneof=active draft"`
	AvailableFrom *time.Time `json:"available_from"`
	AvailableTo   *time.Time `json:"available_to"`
}

func (uc *ListingUseCase) validate(ctx context.Context, input *ListingInput) error {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return errors.BadRequest("Title is required", nil)
	}

	switch input.ListingType {
	case entity.ListingTypeSell, entity.ListingTypeRent, entity.ListingTypeExchange:
	default:
		return errors.BadRequest("Listing type must be sell, rent or exchange", nil)
	}

	if input.IsFree {
		input.Price = nil
	} else if input.Price != nil && (*input.Price < 0 || math.IsNaN(*input.Price)) {
		return errors.BadRequest("Price cannot be negative", nil)
	}

	if (input.Latitude == nil) != (input.Longitude == nil) {
		return errors.BadRequest("Latitude and longitude must be provided together", nil)
	}
	if input.Latitude != nil {
		lat, lon := *input.Latitude, *input.Longitude
		if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
			return errors.BadRequest("Coordinates out of range", nil)
		}
	}

	if input.Condition != "" && !listingConditions[input.Condition] {
		return errors.BadRequest("Invalid condition: "+input.Condition, nil)
	}

	switch input.Status {
	case "":
		input.Status = entity.ListingStatusActive
	case entity.ListingStatusActive, entity.ListingStatusDraft:
	default:
		return errors.BadRequest("Status must be active or draft", nil)
	}

	if input.AvailableFrom != nil && input.AvailableTo != nil && input.AvailableTo.Before(*input.AvailableFrom) {
		return errors.BadRequest("available_to must not be before available_from", nil)
	}

	if input.CategoryID != nil {
		if *input.CategoryID == "" {
			input.CategoryID = nil
		} else if _, err := uc.categoryRepo.GetByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, errors.CodeNotFound) {
				return errors.BadRequest("Invalid category", err)
			}
			return err
		}
	}

	return nil
}

func applyInput(listing *entity.Listing, input ListingInput) {
	listing.Title = input.Title
	listing.Description = input.Description
	listing.Condition = input.Condition
	listing.CategoryID = input.CategoryID
	listing.Price = input.Price
	listing.IsFree = input.IsFree
	listing.ListingType = input.ListingType
	listing.Location = input.Location
	listing.Latitude = input.Latitude
	listing.Longitude = input.Longitude
	listing.Images = input.Images
	listing.AvailableFrom = input.AvailableFrom
	listing.AvailableTo = input.AvailableTo
	if listing.Images == nil {
		listing.Images = []string{}
	}
}

func (uc *ListingUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx)
	}
}

func (uc *ListingUseCase) Create(ctx context.Context, ownerID string, input ListingInput) (*entity.Listing, error) {
	if err := uc.validate(ctx, &input); err != nil {
		return nil, err
	}

	listing := &entity.Listing{
		UserID: ownerID,
		Status: input.Status,
	}
	applyInput(listing, input)

	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)

	logger.Info("listing %s created by %s", listing.ID, ownerID)
	return listing, nil
}

func (uc *ListingUseCase) ListMine(ctx context.Context, ownerID string) ([]*entity.Listing, error) {
	return uc.listingRepo.ListByOwner(ctx, ownerID)
}

func (uc *ListingUseCase) owned(ctx context.Context, ownerID, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.UserID != ownerID {
		return nil, errors.Forbidden("You can only manage your own listings", nil)
	}
	return listing, nil
}

func (uc *ListingUseCase) Update(ctx context.Context, ownerID, id string, input ListingInput) (*entity.Listing, error) {
	listing, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	// A sold listing keeps its status unless the update names one.
	keepStatus := input.Status == "" && listing.Status == entity.ListingStatusSold
	if err := uc.validate(ctx, &input); err != nil {
		return nil, err
	}

	applyInput(listing, input)
	if !keepStatus {
		listing.Status = input.Status
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)

	return listing, nil
}

func (uc *ListingUseCase) UpdateStatus(ctx context.Context, ownerID, id, status string) (*entity.Listing, error) {
	switch status {
	case entity.ListingStatusActive, entity.ListingStatusSold, entity.ListingStatusDraft:
	default:
		return nil, errors.BadRequest("Status must be active, sold or draft", nil)
	}

	listing, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if err := uc.listingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)

	listing.Status = status
	return listing, nil
}

func (uc *ListingUseCase) Delete(ctx context.Context, ownerID, id string) error {
	listing, err := uc.owned(ctx, ownerID, id)
	if err != nil {
		return err
	}

	if err := uc.listingRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)

	if uc.images != nil {
		for _, url := range listing.Images {
			if err := uc.images.DeleteFile(ctx, url); err != nil {
				logger.Warn("failed to delete image %s of listing %s: %v", url, id, err)
			}
		}
	}

	logger.Info("listing %s deleted by %s", id, ownerID)
	return nil
}

// UploadImage stores one listing photo and returns its public URL.
func (uc *ListingUseCase) UploadImage(ctx context.Context, ownerID string, file io.Reader, contentType string, size int64) (string, error) {
	if uc.images == nil {
		return "", errors.NotConfigured("STORAGE_NOT_CONFIGURED", "Image storage is not configured", nil)
	}
	if size <= 0 {
		return "", errors.BadRequest("Image is empty", nil)
	}
	if size > MaxImageSize {
		return "", errors.BadRequest("Image must be 5 MB or smaller", nil)
	}
	if !allowedImageTypes[contentType] {
		return "", errors.BadRequest("Image must be JPEG, PNG or WebP", nil)
	}

	url, err := uc.images.UploadFile(ctx, io.LimitReader(file, MaxImageSize), contentType, "listings/"+ownerID)
	if err != nil {
		return "", errors.Internal("Failed to upload image", err)
	}
	return url, nil
}
