package request

type CreateReview struct {
	ListingID  string `json:"listingId" validate:"required,uuid"`
	Rating     int    `json:"rating" validate:"required,gte=1,lte=5"`
	ReviewText string `json:"reviewText" validate:"required"`
}

type ListingReviews struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
}

type DeleteReview struct {
	ReviewID string `json:"review_id" validate:"required,uuid"`
}
