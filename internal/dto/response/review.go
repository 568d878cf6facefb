package response

import (
	"time"

	"kikao-backend/internal/data/entity"
)

type Review struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	ListingID  string    `json:"listingId"`
	Rating     int       `json:"rating"`
	ReviewText string    `json:"reviewText"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func FromReview(rev *entity.Review) *Review {
	return &Review{
		ID:         rev.ID.String(),
		UserID:     rev.UserID.String(),
		ListingID:  rev.ListingID.String(),
		Rating:     rev.Rating,
		ReviewText: rev.ReviewText,
		CreatedAt:  rev.CreatedAt,
		UpdatedAt:  rev.UpdatedAt,
	}
}

func FromReviews(reviews []*entity.Review) []*Review {
	out := make([]*Review, 0, len(reviews))
	for _, rev := range reviews {
		out = append(out, FromReview(rev))
	}
	return out
}
