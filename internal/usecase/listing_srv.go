package usecase

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/internal/data/repository"
	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/dto/response"
	"kikao-backend/pkg/apperrors"
)

// Rates are quoted in Kenyan shillings throughout.
const defaultCountryCode = "kshs"

type ListingService interface {
	// Create uploads the images and writes the listing with its rate and
	// compartment as one atomic unit owned by the caller.
	Create(ctx context.Context, callerID uuid.UUID, req *request.CreateListing, images []UploadedImage) (*response.Listing, error)

	// Update applies a partial update to the caller's listing aggregate.
	Update(ctx context.Context, callerID uuid.UUID, req *request.UpdateListing) (*response.Listing, error)

	// Delete removes the caller's listing and returns the pre-deletion
	// snapshot.
	Delete(ctx context.Context, callerID, listingID uuid.UUID) (*response.Listing, error)

	Get(ctx context.Context, id uuid.UUID) (*response.Listing, error)
	GetAll(ctx context.Context) (*response.Listings, error)
	Filter(ctx context.Context, filters request.ListingFilters) (*response.Listings, error)
}

type listingService struct {
	repo   *repository.Repository
	images ImageStore
	log    *zap.Logger
}

func NewListingService(repo *repository.Repository, images ImageStore, log *zap.Logger) ListingService {
	return &listingService{
		repo:   repo,
		images: images,
		log:    log.With(zap.String("service", "listing")),
	}
}

func (s *listingService) Create(ctx context.Context, callerID uuid.UUID, req *request.CreateListing, images []UploadedImage) (*response.Listing, error) {
	if len(images) == 0 {
		return nil, apperrors.Generic("Please upload some images with the data!", nil)
	}

	// Uploads run sequentially before any row is written; a failed upload
	// fails the whole request with nothing persisted.
	imageURLs := make([]string, 0, len(images))
	for _, img := range images {
		url, err := s.images.Upload(ctx, img.Filename, img.ContentType, bytes.NewReader(img.Data))
		if err != nil {
			s.log.Error("Failed to upload listing image",
				zap.Error(err),
				zap.String("filename", img.Filename),
			)
			return nil, apperrors.Generic("Image upload failed!", err)
		}
		imageURLs = append(imageURLs, url)
	}

	now := time.Now()
	listing := &entity.Listing{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:      callerID,
		Name:        req.Name,
		Location:    req.Location,
		County:      req.County,
		Status:      req.Status,
		YearBuilt:   req.YearBuilt,
		Description: req.Description,
		Images:      imageURLs,
		Size:        req.Size,
	}
	rate := &entity.Rate{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Price:       req.Price,
		Duration:    req.Duration,
		CountryCode: defaultCountryCode,
	}
	comp := &entity.Compartment{
		Base:              entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Bedrooms:          req.Bedrooms,
		TotalRooms:        req.TotalRooms,
		WashRooms:         req.WashRooms,
		Parking:           req.Parking,
		RoomNumber:        req.RoomNumber,
		Security:          req.Security,
		GarbageCollection: req.GarbageCollection,
		Wifi:              req.Wifi,
	}

	agg, err := s.repo.Listing.CreateAggregate(ctx, listing, rate, comp)
	if err != nil {
		return nil, err
	}

	s.log.Info("Listing created",
		zap.String("listing_id", agg.Listing.ID.String()),
		zap.String("user_id", callerID.String()),
	)
	return response.FromAggregate(agg), nil
}

func (s *listingService) Update(ctx context.Context, callerID uuid.UUID, req *request.UpdateListing) (*response.Listing, error) {
	listingID := uuid.MustParse(req.ListingID)

	existing, err := s.repo.Listing.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("Listing with ID %s not found!", req.ListingID)
	}
	if existing.Listing.UserID != callerID {
		s.log.Warn("Update attempted by non-owner",
			zap.String("listing_id", req.ListingID),
			zap.String("caller_id", callerID.String()),
		)
		return nil, apperrors.Unauthorized("You can only update listing that you have created!")
	}

	upd := &entity.ListingUpdate{
		ListingID:         listingID,
		RateID:            uuid.MustParse(req.RatesID),
		CompartmentID:     uuid.MustParse(req.CompartmentsID),
		Name:              req.Name,
		Location:          req.Location,
		County:            req.County,
		Status:            req.Status,
		YearBuilt:         req.YearBuilt,
		Description:       req.Description,
		Size:              req.Size,
		Price:             req.Price,
		Duration:          req.Duration,
		Bedrooms:          req.Bedrooms,
		TotalRooms:        req.TotalRooms,
		WashRooms:         req.WashRooms,
		Parking:           req.Parking,
		RoomNumber:        req.RoomNumber,
		Security:          req.Security,
		GarbageCollection: req.GarbageCollection,
		Wifi:              req.Wifi,
	}

	agg, err := s.repo.Listing.UpdateAggregate(ctx, upd)
	if err != nil {
		return nil, err
	}

	s.log.Info("Listing updated", zap.String("listing_id", req.ListingID))
	return response.FromAggregate(agg), nil
}

func (s *listingService) Delete(ctx context.Context, callerID, listingID uuid.UUID) (*response.Listing, error) {
	existing, err := s.repo.Listing.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("Listing with ID %s not found!", listingID.String())
	}
	if existing.Listing.UserID != callerID {
		s.log.Warn("Delete attempted by non-owner",
			zap.String("listing_id", listingID.String()),
			zap.String("caller_id", callerID.String()),
		)
		return nil, apperrors.Unauthorized("You can only delete listing that you have created!")
	}

	if err := s.repo.Listing.Delete(ctx, listingID); err != nil {
		return nil, err
	}

	// The caller gets the pre-deletion snapshot back.
	return response.FromAggregate(existing), nil
}

func (s *listingService) Get(ctx context.Context, id uuid.UUID) (*response.Listing, error) {
	agg, err := s.repo.Listing.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if agg == nil {
		return nil, apperrors.NotFound("Listing with ID %s not found!", id.String())
	}
	return response.FromAggregate(agg), nil
}

func (s *listingService) GetAll(ctx context.Context) (*response.Listings, error) {
	aggs, err := s.repo.Listing.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return response.FromAggregates(aggs), nil
}

func (s *listingService) Filter(ctx context.Context, filters request.ListingFilters) (*response.Listings, error) {
	aggs, err := s.repo.Listing.Filter(ctx, entity.ListingFilters{
		Price:  filters.Price,
		County: filters.County,
		Size:   filters.Size,
	})
	if err != nil {
		return nil, err
	}
	return response.FromAggregates(aggs), nil
}
