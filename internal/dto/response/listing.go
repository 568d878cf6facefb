package response

import (
	"time"

	"kikao-backend/internal/data/entity"
)

type Rate struct {
	ID          string    `json:"id"`
	Price       int       `json:"price"`
	Duration    string    `json:"duration"`
	CountryCode string    `json:"countryCode"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Compartment struct {
	ID                string    `json:"id"`
	Bedrooms          int       `json:"bedrooms"`
	TotalRooms        string    `json:"totalRooms"`
	WashRooms         int       `json:"washRooms"`
	Parking           bool      `json:"parking"`
	RoomNumber        bool      `json:"roomNumber"`
	Security          bool      `json:"security"`
	GarbageCollection bool      `json:"garbageCollection"`
	Wifi              bool      `json:"wifi"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type Listing struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	County      string    `json:"county"`
	Status      string    `json:"status"`
	YearBuilt   string    `json:"yearBuilt"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Size        string    `json:"size"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Rates        Rate        `json:"rates"`
	Compartments Compartment `json:"compartments"`
}

// Listings wraps a collection with its count, matching the getListings shape.
type Listings struct {
	Listings []*Listing `json:"listings"`
	Count    int        `json:"count"`
}

func FromAggregate(agg *entity.ListingAggregate) *Listing {
	return &Listing{
		ID:          agg.Listing.ID.String(),
		UserID:      agg.Listing.UserID.String(),
		Name:        agg.Listing.Name,
		Location:    agg.Listing.Location,
		County:      agg.Listing.County,
		Status:      agg.Listing.Status,
		YearBuilt:   agg.Listing.YearBuilt,
		Description: agg.Listing.Description,
		Images:      agg.Listing.Images,
		Size:        agg.Listing.Size,
		CreatedAt:   agg.Listing.CreatedAt,
		UpdatedAt:   agg.Listing.UpdatedAt,
		Rates: Rate{
			ID:          agg.Rate.ID.String(),
			Price:       agg.Rate.Price,
			Duration:    agg.Rate.Duration,
			CountryCode: agg.Rate.CountryCode,
			CreatedAt:   agg.Rate.CreatedAt,
			UpdatedAt:   agg.Rate.UpdatedAt,
		},
		Compartments: Compartment{
			ID:                agg.Compartment.ID.String(),
			Bedrooms:          agg.Compartment.Bedrooms,
			TotalRooms:        agg.Compartment.TotalRooms,
			WashRooms:         agg.Compartment.WashRooms,
			Parking:           agg.Compartment.Parking,
			RoomNumber:        agg.Compartment.RoomNumber,
			Security:          agg.Compartment.Security,
			GarbageCollection: agg.Compartment.GarbageCollection,
			Wifi:              agg.Compartment.Wifi,
			CreatedAt:         agg.Compartment.CreatedAt,
			UpdatedAt:         agg.Compartment.UpdatedAt,
		},
	}
}

func FromAggregates(aggs []*entity.ListingAggregate) *Listings {
	listings := make([]*Listing, 0, len(aggs))
	for _, agg := range aggs {
		listings = append(listings, FromAggregate(agg))
	}
	return &Listings{Listings: listings, Count: len(listings)}
}
