package adaptor

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/usecase"
	"kikao-backend/pkg/mpesa"
	"kikao-backend/pkg/utils"
)

const (
	defaultPaymentsLimit  = 10
	defaultPaymentsOffset = 0
)

type PaymentHandler struct {
	svc usecase.PaymentService
	log *zap.Logger
}

func NewPaymentHandler(svc usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
		log: log.With(zap.String("handler", "payment")),
	}
}

// Process initiates an STK push for the authenticated caller.
func (h *PaymentHandler) Process(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	var req request.ProcessPayment
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, &req) {
		return
	}

	payment, err := h.svc.Process(r.Context(), callerID, &req)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseCreated(w, "Payment initiated successfully!", payment)
}

// Callback receives the provider's asynchronous STK result. It is a public
// webhook; authenticity rests on the unguessable checkout request ID.
func (h *PaymentHandler) Callback(w http.ResponseWriter, r *http.Request) {
	var envelope mpesa.CallbackEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		h.log.Warn("Malformed payment callback", zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid callback body!", nil)
		return
	}

	cb := envelope.Body.StkCallback
	h.log.Info("Payment callback received",
		zap.String("checkout_request_id", cb.CheckoutRequestID),
		zap.Int("result_code", cb.ResultCode),
	)

	payment, err := h.svc.UpdateStatus(r.Context(), &cb)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Payment status updated successfully!", payment)
}

// UserPayments lists the caller's payments with limit/offset pagination and
// an optional status filter.
func (h *PaymentHandler) UserPayments(w http.ResponseWriter, r *http.Request) {
	callerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required!")
		return
	}

	limit := utils.ParseInt(r.URL.Query().Get("limit"), defaultPaymentsLimit)
	offset := utils.ParseInt(r.URL.Query().Get("offset"), defaultPaymentsOffset)

	var status *entity.PaymentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed := entity.PaymentStatus(raw)
		switch parsed {
		case entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.PaymentStatusFailed:
			status = &parsed
		default:
			utils.ResponseBadRequest(w, "Status must be one of pending, completed or failed!", nil)
			return
		}
	}

	payments, err := h.svc.UserPayments(r.Context(), callerID, limit, offset, status)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Successfully fetched payments!", payments)
}

func (h *PaymentHandler) FindByTransactionID(w http.ResponseWriter, r *http.Request) {
	transactionID := chi.URLParam(r, "transactionId")
	if transactionID == "" {
		utils.ResponseBadRequest(w, "Transaction ID is required!", nil)
		return
	}

	payment, err := h.svc.FindByTransactionID(r.Context(), transactionID)
	if err != nil {
		utils.HandleServiceError(w, err)
		return
	}

	utils.ResponseSuccess(w, "Successfully fetched transaction!", payment)
}
