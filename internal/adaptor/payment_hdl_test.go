package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kikao-backend/internal/data/entity"
	"kikao-backend/internal/dto/request"
	"kikao-backend/internal/dto/response"
	"kikao-backend/pkg/mpesa"
)

type fakePaymentService struct {
	ProcessFn             func(ctx context.Context, callerID uuid.UUID, req *request.ProcessPayment) (*response.Payment, error)
	UpdateStatusFn        func(ctx context.Context, cb *mpesa.StkCallback) (*response.Payment, error)
	UserPaymentsFn        func(ctx context.Context, callerID uuid.UUID, limit, offset int, status *entity.PaymentStatus) ([]*response.Payment, error)
	FindByTransactionIDFn func(ctx context.Context, transactionID string) (*response.Payment, error)
}

func (f *fakePaymentService) Process(ctx context.Context, callerID uuid.UUID, req *request.ProcessPayment) (*response.Payment, error) {
	return f.ProcessFn(ctx, callerID, req)
}

func (f *fakePaymentService) UpdateStatus(ctx context.Context, cb *mpesa.StkCallback) (*response.Payment, error) {
	return f.UpdateStatusFn(ctx, cb)
}

func (f *fakePaymentService) UserPayments(ctx context.Context, callerID uuid.UUID, limit, offset int, status *entity.PaymentStatus) ([]*response.Payment, error) {
	return f.UserPaymentsFn(ctx, callerID, limit, offset, status)
}

func (f *fakePaymentService) FindByTransactionID(ctx context.Context, transactionID string) (*response.Payment, error) {
	return f.FindByTransactionIDFn(ctx, transactionID)
}

const callbackBody = `{
  "Body": {
    "stkCallback": {
      "MerchantRequestID": "29115-34620561-1",
      "CheckoutRequestID": "ws_CO_191220191020363925",
      "ResultCode": 0,
      "ResultDesc": "The service request is processed successfully.",
      "CallbackMetadata": {
        "Item": [
          {"Name": "Amount", "Value": 1500},
          {"Name": "MpesaReceiptNumber", "Value": "NLJ7RT61SV"},
          {"Name": "TransactionDate", "Value": 20191219102115},
          {"Name": "PhoneNumber", "Value": 254712345678}
        ]
      }
    }
  }
}`

func TestPaymentCallback_Success(t *testing.T) {
	var got *mpesa.StkCallback
	svc := &fakePaymentService{
		UpdateStatusFn: func(ctx context.Context, cb *mpesa.StkCallback) (*response.Payment, error) {
			got = cb
			return &response.Payment{Status: string(entity.PaymentStatusCompleted)}, nil
		},
	}
	h := NewPaymentHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lipanampesa/success", strings.NewReader(callbackBody))
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "ws_CO_191220191020363925", got.CheckoutRequestID)
	assert.Equal(t, 0, got.ResultCode)

	var body struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "Payment status updated successfully!", body.Message)
}

func TestPaymentCallback_MalformedBody(t *testing.T) {
	h := NewPaymentHandler(&fakePaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/lipanampesa/success", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserPayments_RejectsUnknownStatus(t *testing.T) {
	h := NewPaymentHandler(&fakePaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/payments?status=refunded", nil)
	req = requestWithUserID(req, uuid.New())
	rec := httptest.NewRecorder()
	h.UserPayments(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserPayments_ForwardsQuery(t *testing.T) {
	callerID := uuid.New()
	svc := &fakePaymentService{
		UserPaymentsFn: func(ctx context.Context, id uuid.UUID, limit, offset int, status *entity.PaymentStatus) ([]*response.Payment, error) {
			assert.Equal(t, callerID, id)
			assert.Equal(t, 5, limit)
			assert.Equal(t, 20, offset)
			require.NotNil(t, status)
			assert.Equal(t, entity.PaymentStatusCompleted, *status)
			return []*response.Payment{}, nil
		},
	}
	h := NewPaymentHandler(svc, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/payments?limit=5&offset=20&status=completed", nil)
	req = requestWithUserID(req, callerID)
	rec := httptest.NewRecorder()
	h.UserPayments(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserPayments_Unauthenticated(t *testing.T) {
	h := NewPaymentHandler(&fakePaymentService{}, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/payments", nil)
	rec := httptest.NewRecorder()
	h.UserPayments(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
