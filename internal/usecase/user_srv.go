package usecase

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/internal/data/repository"
	"kikao-backend/internal/dto/response"
	"kikao-backend/pkg/apperrors"
)

type UserService interface {
	// GetListingAuthor resolves the public profile of a listing's owner.
	GetListingAuthor(ctx context.Context, listingID uuid.UUID) (*response.ListingAuthor, error)

	GetUserListings(ctx context.Context, userID uuid.UUID) (*response.Listings, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetListingAuthor(ctx context.Context, listingID uuid.UUID) (*response.ListingAuthor, error) {
	listing, err := s.repo.Listing.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperrors.NotFound("Listing with ID %s not found!", listingID.String())
	}

	author, err := s.repo.User.FindByID(ctx, listing.Listing.UserID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, apperrors.NotFound("Author of listing %s not found!", listingID.String())
	}

	return response.FromListingAuthor(author), nil
}

func (s *userService) GetUserListings(ctx context.Context, userID uuid.UUID) (*response.Listings, error) {
	aggs, err := s.repo.Listing.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return response.FromAggregates(aggs), nil
}
