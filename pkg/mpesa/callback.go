package mpesa

import (
	"fmt"
	"strconv"
)

// CallbackEnvelope is the body Daraja posts to the callback URL after an
// STK push resolves on the customer's handset.
type CallbackEnvelope struct {
	Body struct {
		StkCallback StkCallback `json:"stkCallback"`
	} `json:"Body"`
}

type StkCallback struct {
	MerchantRequestID string           `json:"MerchantRequestID"`
	CheckoutRequestID string           `json:"CheckoutRequestID"`
	ResultCode        int              `json:"ResultCode"`
	ResultDesc        string           `json:"ResultDesc"`
	CallbackMetadata  CallbackMetadata `json:"CallbackMetadata"`
}

type CallbackMetadata struct {
	Item []MetadataItem `json:"Item"`
}

// MetadataItem is one name/value pair of the flat callback metadata list.
// Values arrive untyped: amounts are numbers, receipts and dates strings.
type MetadataItem struct {
	Name  string `json:"Name"`
	Value any    `json:"Value"`
}

// CallbackFields are the named items extracted from the metadata list.
// Failure callbacks usually omit amount and receipt, so absent items leave
// the corresponding field empty rather than failing the callback.
type CallbackFields struct {
	Amount             string
	MpesaReceiptNumber string
	TransactionDate    string
	PhoneNumber        string
}

// Fields scans the metadata item list and picks out the known fields by name.
func (cb *StkCallback) Fields() CallbackFields {
	var f CallbackFields
	for _, item := range cb.CallbackMetadata.Item {
		switch item.Name {
		case "Amount":
			f.Amount = itemString(item.Value)
		case "MpesaReceiptNumber":
			f.MpesaReceiptNumber = itemString(item.Value)
		case "TransactionDate":
			f.TransactionDate = itemString(item.Value)
		case "PhoneNumber":
			f.PhoneNumber = itemString(item.Value)
		}
	}
	return f
}

// Succeeded reports whether the customer completed the payment.
func (cb *StkCallback) Succeeded() bool {
	return cb.ResultCode == 0
}

func itemString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		// JSON numbers decode as float64; dates and phone numbers are
		// integral, amounts may carry decimals.
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
