package response

import (
	"time"

	"kikao-backend/internal/data/entity"
)

type User struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profileImage,omitempty"`
	Provider     string  `json:"provider"`
	IsLinked     bool    `json:"isLinked"`
	KikaoType    string  `json:"kikaoType"`
	Gender       string  `json:"gender"`

	PhoneNumber      *string `json:"phoneNumber,omitempty"`
	BusinessName     *string `json:"businessName,omitempty"`
	BusinessLocation *string `json:"businessLocation,omitempty"`
	BusinessType     *string `json:"businessType,omitempty"`
	BusinessCity     *string `json:"businessCity,omitempty"`
	BusinessLogo     *string `json:"businessLogo,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromUser(u *entity.User) *User {
	return &User{
		ID:               u.ID.String(),
		Username:         u.Username,
		Email:            u.Email,
		ProfileImage:     u.ProfileImage,
		Provider:         string(u.Provider),
		IsLinked:         u.IsLinked,
		KikaoType:        u.KikaoType,
		Gender:           u.Gender,
		PhoneNumber:      u.PhoneNumber,
		BusinessName:     u.BusinessName,
		BusinessLocation: u.BusinessLocation,
		BusinessType:     u.BusinessType,
		BusinessCity:     u.BusinessCity,
		BusinessLogo:     u.BusinessLogo,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
}

// Auth is the login payload: the signed app token plus the authenticated
// user's profile.
type Auth struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// ListingAuthor is the public subset exposed for a listing's owner.
type ListingAuthor struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	ProfileImage *string `json:"profileImage,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	BusinessName *string `json:"businessName,omitempty"`
}

func FromListingAuthor(u *entity.User) *ListingAuthor {
	return &ListingAuthor{
		ID:           u.ID.String(),
		Username:     u.Username,
		Email:        u.Email,
		ProfileImage: u.ProfileImage,
		PhoneNumber:  u.PhoneNumber,
		BusinessName: u.BusinessName,
	}
}
