package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/internal/data/repository"
	"kikao-backend/internal/dto/response"
	"kikao-backend/pkg/apperrors"
)

type BookmarkService interface {
	Add(ctx context.Context, callerID, listingID uuid.UUID) (*response.Bookmark, error)
	UserBookmarks(ctx context.Context, callerID uuid.UUID) ([]*response.Bookmark, error)
	ListingBookmarks(ctx context.Context, listingID uuid.UUID) ([]*response.Bookmark, error)

	// Delete removes a bookmark owned by the caller.
	Delete(ctx context.Context, callerID, bookmarkID uuid.UUID) (*response.Bookmark, error)
}

type bookmarkService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookmarkService(repo *repository.Repository, log *zap.Logger) BookmarkService {
	return &bookmarkService{
		repo: repo,
		log:  log.With(zap.String("service", "bookmark")),
	}
}

func (s *bookmarkService) Add(ctx context.Context, callerID, listingID uuid.UUID) (*response.Bookmark, error) {
	listing, err := s.repo.Listing.FindByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing == nil {
		return nil, apperrors.NotFound("Listing with ID %s not found!", listingID.String())
	}

	now := time.Now()
	bookmark := &entity.Bookmark{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		UserID:    callerID,
		ListingID: listingID,
	}

	if err := s.repo.Bookmark.Create(ctx, bookmark); err != nil {
		return nil, err
	}

	s.log.Info("Bookmark added",
		zap.String("user_id", callerID.String()),
		zap.String("listing_id", listingID.String()),
	)
	return response.FromBookmark(bookmark), nil
}

func (s *bookmarkService) UserBookmarks(ctx context.Context, callerID uuid.UUID) ([]*response.Bookmark, error) {
	bookmarks, err := s.repo.Bookmark.FindByUserID(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if len(bookmarks) == 0 {
		return nil, apperrors.NotFound("No bookmarks found for the given user ID.")
	}
	return response.FromBookmarks(bookmarks), nil
}

func (s *bookmarkService) ListingBookmarks(ctx context.Context, listingID uuid.UUID) ([]*response.Bookmark, error) {
	bookmarks, err := s.repo.Bookmark.FindByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if len(bookmarks) == 0 {
		return nil, apperrors.NotFound("No bookmarks found for the given listing ID.")
	}
	return response.FromBookmarks(bookmarks), nil
}

func (s *bookmarkService) Delete(ctx context.Context, callerID, bookmarkID uuid.UUID) (*response.Bookmark, error) {
	bookmark, err := s.repo.Bookmark.FindByID(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}
	if bookmark == nil {
		return nil, apperrors.NotFound("Bookmark with ID %s not found!", bookmarkID.String())
	}
	if bookmark.UserID != callerID {
		return nil, apperrors.Unauthorized("You can only delete a bookmark that you have created!")
	}

	if err := s.repo.Bookmark.Delete(ctx, bookmarkID); err != nil {
		return nil, err
	}

	return response.FromBookmark(bookmark), nil
}
