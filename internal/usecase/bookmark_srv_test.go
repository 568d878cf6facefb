package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/pkg/apperrors"
)

func TestBookmarkService_Add(t *testing.T) {
	callerID := uuid.New()
	agg := testAggregate(uuid.New())

	var created *entity.Bookmark
	repo := testRepository()
	repo.Listing = &fakeListingRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.ListingAggregate, error) {
			return agg, nil
		},
	}
	repo.Bookmark = &fakeBookmarkRepo{
		CreateFn: func(ctx context.Context, bookmark *entity.Bookmark) error {
			created = bookmark
			return nil
		},
	}

	svc := NewBookmarkService(repo, zap.NewNop())
	bookmark, err := svc.Add(context.Background(), callerID, agg.Listing.ID)
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, callerID, created.UserID)
	assert.Equal(t, agg.Listing.ID, created.ListingID)
	assert.Equal(t, callerID.String(), bookmark.UserID)
}

func TestBookmarkService_Add_MissingListing(t *testing.T) {
	repo := testRepository()
	repo.Listing = &fakeListingRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.ListingAggregate, error) {
			return nil, nil
		},
	}

	svc := NewBookmarkService(repo, zap.NewNop())
	_, err := svc.Add(context.Background(), uuid.New(), uuid.New())
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestBookmarkService_Delete_RejectsNonOwner(t *testing.T) {
	bookmark := &entity.Bookmark{
		Base:      entity.Base{ID: uuid.New()},
		UserID:    uuid.New(),
		ListingID: uuid.New(),
	}

	repo := testRepository()
	repo.Bookmark = &fakeBookmarkRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error) {
			return bookmark, nil
		},
		DeleteFn: func(ctx context.Context, id uuid.UUID) error {
			t.Fatal("delete must not run for a non-owner")
			return nil
		},
	}

	svc := NewBookmarkService(repo, zap.NewNop())
	_, err := svc.Delete(context.Background(), uuid.New(), bookmark.ID)
	assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
}

func TestBookmarkService_Delete_Owner(t *testing.T) {
	callerID := uuid.New()
	bookmark := &entity.Bookmark{
		Base:      entity.Base{ID: uuid.New()},
		UserID:    callerID,
		ListingID: uuid.New(),
	}

	repo := testRepository()
	repo.Bookmark = &fakeBookmarkRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error) {
			return bookmark, nil
		},
		DeleteFn: func(ctx context.Context, id uuid.UUID) error {
			assert.Equal(t, bookmark.ID, id)
			return nil
		},
	}

	svc := NewBookmarkService(repo, zap.NewNop())
	deleted, err := svc.Delete(context.Background(), callerID, bookmark.ID)
	require.NoError(t, err)
	assert.Equal(t, bookmark.ID.String(), deleted.ID)
}

func TestBookmarkService_UserBookmarks_Empty(t *testing.T) {
	repo := testRepository()
	repo.Bookmark = &fakeBookmarkRepo{
		FindByUserIDFn: func(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error) {
			return nil, nil
		},
	}

	svc := NewBookmarkService(repo, zap.NewNop())
	_, err := svc.UserBookmarks(context.Background(), uuid.New())
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
