package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "valid", body: `{"amount":100,"wallet_number":"1234567890123"}`},
		{name: "malformed", body: `{"amount":`, wantMessage: "Request body must be valid JSON"},
		{name: "zero amount", body: `{"amount":0,"wallet_number":"1234567890123"}`, wantMessage: "amount is required"},
		{name: "negative amount", body: `{"amount":-5,"wallet_number":"1234567890123"}`, wantMessage: "amount must be greater than 0"},
		{name: "short wallet", body: `{"amount":5,"wallet_number":"123"}`, wantMessage: "wallet_number must be exactly 13 characters"},
		{name: "letters in wallet", body: `{"amount":5,"wallet_number":"12345678901ab"}`, wantMessage: "wallet_number must contain only digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst models.TransferRequest

			err := decodeJSON(httptest.NewRecorder(), req, &dst)
			if tt.wantMessage == "" {
				assert.NoError(t, err)
				return
			}
			appErr, ok := apperrors.From(err)
			require.True(t, ok)
			assert.Equal(t, "invalid_input", appErr.Code)
			assert.Equal(t, tt.wantMessage, appErr.Message)
		})
	}
}

func TestValidateStruct_OneOf(t *testing.T) {
	err := validateStruct(&models.CreateKeyRequest{Name: "ci", Permissions: []string{"admin"}, Expiry: "2W"})
	appErr, ok := apperrors.From(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "permissions[0] must be one of deposit, transfer, read")
	assert.Contains(t, appErr.Message, "expiry must be one of 1H, 1D, 1M, 1Y")
}
