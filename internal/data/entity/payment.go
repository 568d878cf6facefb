package entity

import (
	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Terminal reports whether the status can no longer change. A repeat
// provider callback against a terminal payment is a no-op.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusCompleted || s == PaymentStatusFailed
}

type Payment struct {
	Base
	UserID      uuid.UUID     `db:"user_id"`
	PhoneNumber string        `db:"phone_number"`
	Amount      int           `db:"amount"`
	Status      PaymentStatus `db:"status"`

	// Set from the synchronous STK push response at initiation.
	MerchantRequestID   string `db:"merchant_request_id"`
	CheckoutRequestID   string `db:"checkout_request_id"`
	ResponseCode        string `db:"response_code"`
	ResponseDescription string `db:"response_description"`
	CustomerMessage     string `db:"customer_message"`

	// Set by the asynchronous callback during reconciliation.
	TransactionID      *string `db:"transaction_id"`
	ResultCode         string  `db:"result_code"`
	ResultDescription  string  `db:"result_description"`
	MpesaReceiptNumber *string `db:"mpesa_receipt_number"`
	TransactionDate    string  `db:"transaction_date"`
}

// PaymentReconciliation holds the callback fields applied to a pending
// payment when the provider confirms or rejects it.
type PaymentReconciliation struct {
	Status             PaymentStatus
	ResultCode         string
	ResultDescription  string
	MpesaReceiptNumber string
	TransactionDate    string
}
