package entity

import (
	"github.com/google/uuid"
)

type Bookmark struct {
	Base
	UserID    uuid.UUID `db:"user_id"`
	ListingID uuid.UUID `db:"listing_id"`
}
