package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/pkg/apperrors"
	"kikao-backend/pkg/database"
)

type BookmarkRepository interface {
	Create(ctx context.Context, bookmark *entity.Bookmark) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error)
	FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*entity.Bookmark, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookmarkRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookmarkRepository(db database.PgxIface, log *zap.Logger) BookmarkRepository {
	return &bookmarkRepository{
		db:  db,
		log: log.With(zap.String("repository", "bookmark")),
	}
}

const bookmarkColumns = `id, user_id, listing_id, created_at, updated_at`

func scanBookmark(row pgx.Row) (*entity.Bookmark, error) {
	var b entity.Bookmark
	err := row.Scan(&b.ID, &b.UserID, &b.ListingID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookmarkRepository) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	query := `
		INSERT INTO bookmarks (id, user_id, listing_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		bookmark.ID,
		bookmark.UserID,
		bookmark.ListingID,
		bookmark.CreatedAt,
		bookmark.UpdatedAt,
	)
	if err != nil {
		// 23505: the (user_id, listing_id) pair is already bookmarked.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.Generic("You have already bookmarked this listing!", err)
		}
		r.log.Error("Failed to create bookmark",
			zap.Error(err),
			zap.String("user_id", bookmark.UserID.String()),
			zap.String("listing_id", bookmark.ListingID.String()),
		)
		return fmt.Errorf("create bookmark for listing %s: %w", bookmark.ListingID.String(), err)
	}

	return nil
}

func (r *bookmarkRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bookmark, error) {
	query := `SELECT ` + bookmarkColumns + ` FROM bookmarks WHERE id = $1`

	bookmark, err := scanBookmark(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bookmark by ID",
			zap.Error(err),
			zap.String("bookmark_id", id.String()),
		)
		return nil, fmt.Errorf("find bookmark by ID %s: %w", id.String(), err)
	}

	return bookmark, nil
}

func (r *bookmarkRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Bookmark, error) {
	return r.findAllBy(ctx, "user_id", userID)
}

func (r *bookmarkRepository) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*entity.Bookmark, error) {
	return r.findAllBy(ctx, "listing_id", listingID)
}

func (r *bookmarkRepository) findAllBy(ctx context.Context, column string, id uuid.UUID) ([]*entity.Bookmark, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookmarks WHERE %s = $1 ORDER BY created_at DESC`, bookmarkColumns, column)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to find bookmarks",
			zap.Error(err),
			zap.String(column, id.String()),
		)
		return nil, fmt.Errorf("find bookmarks by %s %s: %w", column, id.String(), err)
	}
	defer rows.Close()

	var bookmarks []*entity.Bookmark
	for rows.Next() {
		bookmark, err := scanBookmark(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bookmark row: %w", err)
		}
		bookmarks = append(bookmarks, bookmark)
	}
	return bookmarks, rows.Err()
}

func (r *bookmarkRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookmarks WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete bookmark",
			zap.Error(err),
			zap.String("bookmark_id", id.String()),
		)
		return fmt.Errorf("delete bookmark %s: %w", id.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.DeleteFailed("Bookmark deletion was not successful.")
	}

	return nil
}
