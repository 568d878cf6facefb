package usecase

import (
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

type ReviewService interface {
	Create(ctx context.Context, callerID uuid.UUID, req *request.CreateReview) (*response.Review, error)
	ListingReviews(ctx context.Context, listingID uuid.UUID) ([]*response.Review, error)

	// Delete removes a review written by the caller.
	Delete(ctx context.Context, callerID, reviewID uuid.UUID) (*response.Review, error)
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, callerID uuid.UUID, req *request.CreateReview) (*response.Review, error) {
	listingID := uuid.MustParse(req.ListingID)

	listing, err := s.repo.Listing.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperrors.NotFound("Listing with ID %s not found!", req.ListingID)
	}

	now := time.Now()
	review := &entity.Review{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:     callerID,
		ListingID:  listingID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review saved",
		zap.String("listing_id", req.ListingID),
		zap.Int("rating", req.Rating),
	)
	return response.FromReview(review), nil
}

func (s *reviewService) ListingReviews(ctx context.Context, listingID uuid.UUID) ([]*response.Review, error) {
	reviews, err := s.repo.Review.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, apperrors.NotFound("No reviews found for the given listing ID.")
	}
	return response.FromReviews(reviews), nil
}

func (s *reviewService) Delete(ctx context.Context, callerID, reviewID uuid.UUID) (*response.Review, error) {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, apperrors.NotFound("Review with ID %s not found!", reviewID.String())
	}
	if review.UserID != callerID {
		return nil, apperrors.Unauthorized("You can only delete a review that you have created!")
	}

	if err := s.repo.Review.Delete(ctx, reviewID); err != nil {
		return nil, err
	}

	return response.FromReview(review), nil
}
