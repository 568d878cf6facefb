package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	UserID     uuid.UUID `db:"user_id"`
	ListingID  uuid.UUID `db:"listing_id"`
	Rating     int       `db:"rating"`
	ReviewText string    `db:"review_text"`
}
