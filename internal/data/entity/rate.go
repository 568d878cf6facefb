package entity

import (
	"github.com/google/uuid"
)

type Rate struct {
	Base
	ListingID   uuid.UUID `db:"listing_id"`
	Price       int       `db:"price"`
	Duration    string    `db:"duration"`
	CountryCode string    `db:"country_code"`
}
