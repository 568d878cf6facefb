package entity

import (
	"github.com/google/uuid"
)

type Compartment struct {
	Base
	ListingID         uuid.UUID `db:"listing_id"`
	Bedrooms          int       `db:"bedrooms"`
	TotalRooms        string    `db:"total_rooms"`
	WashRooms         int       `db:"wash_rooms"`
	Parking           bool      `db:"parking"`
	RoomNumber        bool      `db:"room_number"`
	Security          bool      `db:"security"`
	GarbageCollection bool      `db:"garbage_collection"`
	Wifi              bool      `db:"wifi"`
}
