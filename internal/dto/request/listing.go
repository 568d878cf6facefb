package request

// CreateListing is parsed from the multipart form accompanying the
// listing_images file parts. Numeric and boolean fields arrive as form
// strings and are coerced by the handler before validation.
type CreateListing struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	County      string `json:"county" validate:"required"`
	Status      string `json:"status" validate:"required"`
	YearBuilt   string `json:"yearBuilt" validate:"required"`
	Description string `json:"description" validate:"required"`
	Size        string `json:"size" validate:"required"`

	Price    int    `json:"price" validate:"required,gt=0"`
	Duration string `json:"duration" validate:"required"`

	Bedrooms          int    `json:"bedrooms" validate:"gte=0"`
	TotalRooms        string `json:"totalrooms" validate:"required"`
	WashRooms         int    `json:"washrooms" validate:"gte=0"`
	Parking           bool   `json:"parking"`
	RoomNumber        bool   `json:"roomnumber"`
	Security          bool   `json:"security"`
	GarbageCollection bool   `json:"garbagecollection"`
	Wifi              bool   `json:"wifi"`
}

// UpdateListing updates any subset of a listing aggregate. The three ids are
// mandatory; everything else is optional and omitted fields stay untouched.
type UpdateListing struct {
	ListingID      string `json:"listingId" validate:"required,uuid"`
	RatesID        string `json:"ratesId" validate:"required,uuid"`
	CompartmentsID string `json:"compartmentsId" validate:"required,uuid"`

	Name        *string `json:"name" validate:"omitempty,min=1"`
	Location    *string `json:"location" validate:"omitempty,min=1"`
	County      *string `json:"county" validate:"omitempty,min=1"`
	Status      *string `json:"status" validate:"omitempty,min=1"`
	YearBuilt   *string `json:"yearBuilt" validate:"omitempty,min=1"`
	Description *string `json:"description" validate:"omitempty,min=1"`
	Size        *string `json:"size" validate:"omitempty,min=1"`

	Price    *int    `json:"price" validate:"omitempty,gt=0"`
	Duration *string `json:"duration" validate:"omitempty,min=1"`

	Bedrooms          *int    `json:"bedrooms" validate:"omitempty,gte=0"`
	TotalRooms        *string `json:"totalRooms" validate:"omitempty,min=1"`
	WashRooms         *int    `json:"washRooms" validate:"omitempty,gte=0"`
	Parking           *bool   `json:"parking"`
	RoomNumber        *bool   `json:"roomNumber"`
	Security          *bool   `json:"security"`
	GarbageCollection *bool   `json:"garbageCollection"`
	Wifi              *bool   `json:"wifi"`
}

type DeleteListing struct {
	ListingID string `json:"listingId" validate:"required,uuid"`
}

type GetListing struct {
	ID string `json:"Id" validate:"required,uuid"`
}

// ListingFilters are conjunctive equality filters; absent fields do not
// constrain the result.
type ListingFilters struct {
	Price  *int    `json:"price" validate:"omitempty,gt=0"`
	County *string `json:"county" validate:"omitempty,min=1"`
	Size   *string `json:"size" validate:"omitempty,min=1"`
}

type FilterListings struct {
	Filters ListingFilters `json:"filters"`
}
