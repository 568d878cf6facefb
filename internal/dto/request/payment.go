package request

// ProcessPayment initiates an STK push. The phone number must be a Kenyan
// MSISDN in +254XXXXXXXXX form.
type ProcessPayment struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,kephone"`
	Amount      int    `json:"amount" validate:"required,gt=0"`
}
