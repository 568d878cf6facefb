package request

type ListingAuthor struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
}

type AuthorListings struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}
