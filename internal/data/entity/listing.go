package entity

import (
	"github.com/google/uuid"
)

type Listing struct {
	Base
	UserID      uuid.UUID `db:"user_id"`
	Name        string    `db:"name"`
	Location    string    `db:"location"`
	County      string    `db:"county"`
	Status      string    `db:"status"`
	YearBuilt   string    `db:"year_built"`
	Description string    `db:"description"`
	Images      []string  `db:"images"`
	Size        string    `db:"size"`
}

// ListingAggregate is a listing joined with its one rate and one compartment.
// Reads use inner joins: the create path guarantees both children exist.
type ListingAggregate struct {
	Listing     Listing
	Rate        Rate
	Compartment Compartment
}

// ListingFilters are conjunctive equality filters; a nil field means
// no constraint on that attribute.
type ListingFilters struct {
	Price  *int
	County *string
	Size   *string
}

// ListingUpdate carries a partial update for one listing aggregate. RateID and
// CompartmentID are mandatory and must belong to the listing being updated;
// all other fields are optional.
type ListingUpdate struct {
	ListingID     uuid.UUID
	RateID        uuid.UUID
	CompartmentID uuid.UUID

	Name        *string
	Location    *string
	County      *string
	Status      *string
	YearBuilt   *string
	Description *string
	Size        *string

	Price    *int
	Duration *string

	Bedrooms          *int
	TotalRooms        *string
	WashRooms         *int
	Parking           *bool
	RoomNumber        *bool
	Security          *bool
	GarbageCollection *bool
	Wifi              *bool
}
