package request

// GoogleLogin carries the ID token obtained by the frontend from Google's
// OAuth flow. The backend verifies it and answers with an app JWT.
type GoogleLogin struct {
	Token string `json:"token" validate:"required"`
}

// RegisterBusiness is parsed from multipart form fields; the optional
// business_logo file part is handled separately by the handler.
type RegisterBusiness struct {
	PhoneNumber  string `json:"phoneNumber" validate:"required,kephone"`
	BusinessName string `json:"businessName" validate:"required"`
	Location     string `json:"location" validate:"required"`
	BusinessType string `json:"businessType" validate:"required"`
	BusinessCity string `json:"businessCity" validate:"required"`
}
