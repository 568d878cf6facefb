package response

import (
	"time"

	"kikao-backend/internal/data/entity"
)

type Bookmark struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	ListingID string    `json:"listingId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromBookmark(b *entity.Bookmark) *Bookmark {
	return &Bookmark{
		ID:        b.ID.String(),
		UserID:    b.UserID.String(),
		ListingID: b.ListingID.String(),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func FromBookmarks(bookmarks []*entity.Bookmark) []*Bookmark {
	out := make([]*Bookmark, 0, len(bookmarks))
	for _, b := range bookmarks {
		out = append(out, FromBookmark(b))
	}
	return out
}
