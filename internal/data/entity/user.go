package entity

type AuthProvider string

const (
	ProviderGoogle AuthProvider = "google"
)

type User struct {
	Base
	Gender             string       `db:"gender"`
	IsLinked           bool         `db:"is_linked"`
	Username           string       `db:"username"`
	Email              string       `db:"email"`
	KikaoType          string       `db:"kikao_type"`
	ProfileImage       *string      `db:"profile_image"`
	PhoneNumber        *string      `db:"phone_number"`
	Provider           AuthProvider `db:"provider"`
	ProviderUserID     string       `db:"provider_user_id"`
	BusinessName       *string      `db:"business_name"`
	BusinessLocation   *string      `db:"business_location"`
	BusinessType       *string      `db:"business_type"`
	BusinessCity       *string      `db:"business_city"`
	BusinessLogo       *string      `db:"business_logo"`
}

// BusinessInfo is the mutable business-profile subset of a user record.
type BusinessInfo struct {
	PhoneNumber      string
	BusinessName     string
	BusinessLocation string
	BusinessType     string
	BusinessCity     string
	BusinessLogo     *string
}
