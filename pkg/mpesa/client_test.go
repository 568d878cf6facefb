package mpesa

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kikao-backend/pkg/utils"
)

func TestClient_STKPush(t *testing.T) {
	var tokenCalls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/oauth/v1/generate":
			tokenCalls++
			assert.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))
			assert.Contains(t, r.Header.Get("Authorization"), "Basic ")
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "test-token",
				"expires_in":   "3599",
			})

		case "/mpesa/stkpush/v1/processrequest":
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			var req stkPushRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "174379", req.BusinessShortCode)
			assert.Equal(t, "CustomerPayBillOnline", req.TransactionType)
			assert.Equal(t, 1500, req.Amount)
			// The leading plus must be stripped from the MSISDN.
			assert.Equal(t, "254712345678", req.PartyA)
			assert.Equal(t, "254712345678", req.PhoneNumber)
			assert.NotEmpty(t, req.Password)
			assert.Len(t, req.Timestamp, 14)

			json.NewEncoder(w).Encode(STKPushResponse{
				MerchantRequestID:   "29115-34620561-1",
				CheckoutRequestID:   "ws_CO_191220191020363925",
				ResponseCode:        "0",
				ResponseDescription: "Success. Request accepted for processing",
				CustomerMessage:     "Success. Request accepted for processing",
			})

		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := NewClient(utils.MpesaConfig{
		BaseURL:        srv.URL,
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		Passkey:        "passkey",
		CallbackURL:    "https://api.test/lipanampesa/success",
	}, zap.NewNop())

	resp, err := client.STKPush(context.Background(), "+254712345678", 1500, "KIKAO-REF")
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_191220191020363925", resp.CheckoutRequestID)

	// Second push reuses the cached token.
	_, err = client.STKPush(context.Background(), "+254712345678", 1500, "KIKAO-REF")
	require.NoError(t, err)
	assert.Equal(t, 1, tokenCalls)
}

func TestClient_STKPush_RejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/v1/generate" {
			json.NewEncoder(w).Encode(map[string]string{"access_token": "t", "expires_in": "3599"})
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(utils.MpesaConfig{BaseURL: srv.URL}, zap.NewNop())

	_, err := client.STKPush(context.Background(), "+254712345678", 1500, "KIKAO-REF")
	assert.Error(t, err)
}
