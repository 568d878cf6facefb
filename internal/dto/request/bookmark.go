package request

type AddBookmark struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
}

type ListingBookmarks struct {
	ListingID string `json:"listing_id" validate:"required,uuid"`
}

type DeleteBookmark struct {
	BookmarkID string `json:"bookmark_id" validate:"required,uuid"`
}
