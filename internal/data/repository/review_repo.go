package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/pkg/apperrors"
	"kikao-backend/pkg/database"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*entity.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `id, user_id, listing_id, rating, review_text, created_at, updated_at`

func scanReview(row pgx.Row) (*entity.Review, error) {
	var rev entity.Review
	err := row.Scan(&rev.ID, &rev.UserID, &rev.ListingID, &rev.Rating, &rev.ReviewText, &rev.CreatedAt, &rev.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rev, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, listing_id, rating, review_text, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.ListingID,
		review.Rating,
		review.ReviewText,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("listing_id", review.ListingID.String()),
		)
		return fmt.Errorf("create review for listing %s: %w", review.ListingID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE listing_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, listingID)
	if err != nil {
		r.log.Error("Failed to find reviews by listing ID",
			zap.Error(err),
			zap.String("listing_id", listingID.String()),
		)
		return nil, fmt.Errorf("find reviews by listing ID %s: %w", listingID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.DeleteFailed("Review deletion was not successful.")
	}

	return nil
}
