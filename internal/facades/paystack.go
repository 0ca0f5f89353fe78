package facades

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
)

// PaystackBaseURL is the production Paystack API.
const PaystackBaseURL = "https://api.paystack.co"

// PaystackConfig holds the Paystack credentials and endpoints.
type PaystackConfig struct {
	BaseURL       string
	SecretKey     string
	WebhookSecret string
	CallbackURL   string
	Timeout       time.Duration
}

// PaystackFacade talks to the Paystack transaction API.
type PaystackFacade struct {
	cfg    PaystackConfig
	client *http.Client
}

// NewPaystackFacade creates a new Paystack client.
func NewPaystackFacade(cfg PaystackConfig) *PaystackFacade {
	if cfg.BaseURL == "" {
		cfg.BaseURL = PaystackBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &PaystackFacade{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type paystackEnvelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type initializeRequest struct {
	Email       string `json:"email"`
	Amount      int64  `json:"amount"`
	Reference   string `json:"reference"`
	CallbackURL string `json:"callback_url,omitempty"`
}

type initializeData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type verifyData struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    int64   `json:"amount"`
	PaidAt    *string `json:"paid_at"`
}

// InitializeTransaction opens a hosted checkout session for amount minor units.
func (f *PaystackFacade) InitializeTransaction(
	ctx context.Context,
	email string,
	amount int64,
	reference string,
) (*models.PaymentCheckout, error) {
	body, err := json.Marshal(initializeRequest{
		Email:       email,
		Amount:      amount,
		Reference:   reference,
		CallbackURL: f.cfg.CallbackURL,
	})
	if err != nil {
		return nil, err
	}

	var out paystackEnvelope[initializeData]
	status, err := f.do(ctx, http.MethodPost, "/transaction/initialize", body, &out)
	if err != nil {
		logger.Log.Errorw("paystack initialize request failed", "reference", reference, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPaymentInitiation, err)
	}
	if status != http.StatusOK || !out.Status || out.Data.AuthorizationURL == "" {
		logger.Log.Errorw("paystack rejected initialize", "reference", reference, "status", status, "message", out.Message)
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrPaymentInitiation, status, out.Message)
	}

	ref := out.Data.Reference
	if ref == "" {
		ref = reference
	}
	return &models.PaymentCheckout{
		Reference:        ref,
		AuthorizationURL: out.Data.AuthorizationURL,
		AccessCode:       out.Data.AccessCode,
	}, nil
}

// VerifyTransaction fetches the authoritative state of a charge.
func (f *PaystackFacade) VerifyTransaction(ctx context.Context, reference string) (*models.ChargeResult, error) {
	var out paystackEnvelope[verifyData]
	status, err := f.do(ctx, http.MethodGet, "/transaction/verify/"+url.PathEscape(reference), nil, &out)
	if err != nil {
		logger.Log.Errorw("paystack verify request failed", "reference", reference, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrPaymentProvider, err)
	}
	if status != http.StatusOK || !out.Status {
		logger.Log.Warnw("paystack rejected verify", "reference", reference, "status", status, "message", out.Message)
		return nil, fmt.Errorf("%w: status %d: %s", apperrors.ErrPaymentProvider, status, out.Message)
	}

	result := &models.ChargeResult{
		Reference: out.Data.Reference,
		Status:    out.Data.Status,
		Amount:    out.Data.Amount,
		PaidAt:    models.ParsePaidAt(out.Data.PaidAt),
	}
	if result.Reference == "" {
		result.Reference = reference
	}
	return result, nil
}

// VerifySignature checks the x-paystack-signature header of a webhook body.
// Verification is skipped when no webhook secret is configured.
func (f *PaystackFacade) VerifySignature(payload []byte, signature string) error {
	if f.cfg.WebhookSecret == "" {
		return nil
	}
	if signature == "" {
		return apperrors.ErrMissingSignature
	}

	mac := hmac.New(sha512.New, []byte(f.cfg.WebhookSecret))
	mac.Write(payload)
	expected := mac.Sum(nil)

	got, err := hex.DecodeString(signature)
	if err != nil || !hmac.Equal(expected, got) {
		return apperrors.ErrInvalidSignature
	}
	return nil
}

func (f *PaystackFacade) do(ctx context.Context, method, path string, body []byte, out any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, f.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Authorization", "Bearer "+f.cfg.SecretKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}
