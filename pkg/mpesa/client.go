// Package mpesa is a minimal client for the Safaricom Daraja STK push API.
package mpesa

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"kikao-backend/pkg/utils"
)

// STKPushResponse is the synchronous initiation response. CheckoutRequestID
// is the correlation key the asynchronous callback is matched on.
type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type stkPushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            int    `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type Client struct {
	cfg  utils.MpesaConfig
	http *http.Client
	log  *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

func NewClient(cfg utils.MpesaConfig, log *zap.Logger) *Client {
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: 30 * time.Second},
		log:  log.With(zap.String("client", "mpesa")),
	}
}

// STKPush initiates a customer-to-business payment prompt on the given phone.
// The provider later delivers the outcome to the configured callback URL.
func (c *Client) STKPush(ctx context.Context, phoneNumber string, amount int, accountRef string) (*STKPushResponse, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("mpesa auth: %w", err)
	}

	timestamp := time.Now().Format("20060102150405")
	password := base64.StdEncoding.EncodeToString(
		[]byte(c.cfg.ShortCode + c.cfg.Passkey + timestamp))

	// PartyA/PhoneNumber use the MSISDN without the leading plus.
	msisdn := phoneNumber
	if len(msisdn) > 0 && msisdn[0] == '+' {
		msisdn = msisdn[1:]
	}

	payload := stkPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount,
		PartyA:            msisdn,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       msisdn,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  accountRef,
		TransactionDesc:   "Kikao listing payment",
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal stk push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/mpesa/stkpush/v1/processrequest", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("build stk push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("stk push request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		c.log.Error("STK push rejected",
			zap.Int("status", res.StatusCode),
			zap.String("account_ref", accountRef),
		)
		return nil, fmt.Errorf("stk push returned status %d", res.StatusCode)
	}

	var resp STKPushResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode stk push response: %w", err)
	}

	c.log.Info("STK push initiated",
		zap.String("merchant_request_id", resp.MerchantRequestID),
		zap.String("checkout_request_id", resp.CheckoutRequestID),
		zap.String("response_code", resp.ResponseCode),
	)

	return &resp, nil
}

// token returns a cached OAuth access token, refreshing it when expired.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry) {
		return c.accessToken, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/oauth/v1/generate?grant_type=client_credentials", nil)
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}

	auth := base64.StdEncoding.EncodeToString(
		[]byte(c.cfg.ConsumerKey + ":" + c.cfg.ConsumerSecret))
	req.Header.Set("Authorization", "Basic "+auth)

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned status %d", res.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(res.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}

	// Daraja tokens last an hour; refresh a minute early.
	c.accessToken = tr.AccessToken
	c.tokenExpiry = time.Now().Add(59 * time.Minute)

	return c.accessToken, nil
}
