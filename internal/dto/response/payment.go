package response

import (
	"time"

	"kikao-backend/internal/data/entity"
)

type Payment struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
	Amount      int    `json:"amount"`
	Status      string `json:"status"`

	MerchantRequestID   string `json:"merchantRequestId"`
	CheckoutRequestID   string `json:"checkoutRequestId"`
	ResponseCode        string `json:"responseCode"`
	ResponseDescription string `json:"responseDescription"`
	CustomerMessage     string `json:"customerMessage"`

	TransactionID      *string `json:"transactionId,omitempty"`
	ResultCode         string  `json:"resultCode"`
	ResultDescription  string  `json:"resultDescription"`
	MpesaReceiptNumber *string `json:"mpesaReceiptNumber,omitempty"`
	TransactionDate    string  `json:"transactionDate"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromPayment(p *entity.Payment) *Payment {
	return &Payment{
		ID:                  p.ID.String(),
		UserID:              p.UserID.String(),
		PhoneNumber:         p.PhoneNumber,
		Amount:              p.Amount,
		Status:              string(p.Status),
		MerchantRequestID:   p.MerchantRequestID,
		CheckoutRequestID:   p.CheckoutRequestID,
		ResponseCode:        p.ResponseCode,
		ResponseDescription: p.ResponseDescription,
		CustomerMessage:     p.CustomerMessage,
		TransactionID:       p.TransactionID,
		ResultCode:          p.ResultCode,
		ResultDescription:   p.ResultDescription,
		MpesaReceiptNumber:  p.MpesaReceiptNumber,
		TransactionDate:     p.TransactionDate,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromPayments(payments []*entity.Payment) []*Payment {
	out := make([]*Payment, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromPayment(p))
	}
	return out
}
