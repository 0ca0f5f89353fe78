package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateKeyHandler(t *testing.T) {
	expiresAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name               string
		body               string
		setupMocks         func(m *MockKeyManager)
		expectedStatusCode int
		expectedBody       map[string]any
	}{
		{
			name: "created",
			body: `{"name":"ci","permissions":["read","deposit"],"expiry":"1D"}`,
			setupMocks: func(m *MockKeyManager) {
				m.EXPECT().Create(gomock.Any(), testPrincipal.UserID, "ci", []string{"read", "deposit"}, "1D").
					Return(&models.IssuedKey{Secret: "sk_abc", ExpiresAt: expiresAt}, nil)
			},
			expectedStatusCode: http.StatusCreated,
			expectedBody:       map[string]any{"api_key": "sk_abc", "expires_at": "2025-06-01T10:00:00Z"},
		},
		{
			name:               "unknown permission",
			body:               `{"name":"ci","permissions":["admin"],"expiry":"1D"}`,
			setupMocks:         func(m *MockKeyManager) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"error": "invalid_input"},
		},
		{
			name:               "unknown expiry",
			body:               `{"name":"ci","permissions":["read"],"expiry":"2W"}`,
			setupMocks:         func(m *MockKeyManager) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"error": "invalid_input"},
		},
		{
			name: "limit reached",
			body: `{"name":"ci","permissions":["read"],"expiry":"1H"}`,
			setupMocks: func(m *MockKeyManager) {
				m.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, apperrors.ErrTooManyActiveKeys)
			},
			expectedStatusCode: http.StatusForbidden,
			expectedBody:       map[string]any{"error": "limit_exceeded"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockKeyManager(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodPost, "/keys/create", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewCreateKeyHandler(svc, withPrincipal(testPrincipal)).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			body := decodeBody(t, rr)
			for k, v := range tt.expectedBody {
				assert.Equal(t, v, body[k], k)
			}
		})
	}
}

func TestRolloverKeyHandler(t *testing.T) {
	expiresAt := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name               string
		body               string
		setupMocks         func(m *MockKeyManager)
		expectedStatusCode int
		expectedBody       map[string]any
	}{
		{
			name: "rolled over",
			body: `{"expired_key_id":"sk_old","expiry":"1Y"}`,
			setupMocks: func(m *MockKeyManager) {
				m.EXPECT().Rollover(gomock.Any(), testPrincipal.UserID, "sk_old", "1Y").
					Return(&models.IssuedKey{Secret: "sk_new", ExpiresAt: expiresAt}, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedBody:       map[string]any{"api_key": "sk_new", "expires_at": "2026-01-01T00:00:00Z"},
		},
		{
			name: "key still active",
			body: `{"expired_key_id":"sk_live","expiry":"1M"}`,
			setupMocks: func(m *MockKeyManager) {
				m.EXPECT().Rollover(gomock.Any(), gomock.Any(), "sk_live", "1M").Return(nil, apperrors.ErrKeyNotExpired)
			},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"error": "key_not_expired"},
		},
		{
			name: "unknown key",
			body: `{"expired_key_id":"sk_nope","expiry":"1M"}`,
			setupMocks: func(m *MockKeyManager) {
				m.EXPECT().Rollover(gomock.Any(), gomock.Any(), "sk_nope", "1M").Return(nil, apperrors.ErrKeyNotFound)
			},
			expectedStatusCode: http.StatusNotFound,
			expectedBody:       map[string]any{"error": "key_not_found"},
		},
		{
			name:               "missing key",
			body:               `{"expiry":"1M"}`,
			setupMocks:         func(m *MockKeyManager) {},
			expectedStatusCode: http.StatusBadRequest,
			expectedBody:       map[string]any{"error": "invalid_input"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := NewMockKeyManager(ctrl)
			tt.setupMocks(svc)

			req := httptest.NewRequest(http.MethodPost, "/keys/rollover", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()

			NewRolloverKeyHandler(svc, withPrincipal(testPrincipal)).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)
			body := decodeBody(t, rr)
			for k, v := range tt.expectedBody {
				assert.Equal(t, v, body[k], k)
			}
		})
	}
}

func TestRevokeKeyHandler(t *testing.T) {
	t.Run("revoked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockKeyManager(ctrl)
		svc.EXPECT().Revoke(gomock.Any(), testPrincipal.UserID, "sk_abc").Return("ci", nil)

		req := httptest.NewRequest(http.MethodPost, "/keys/revoke", bytes.NewBufferString(`{"api_key":"sk_abc"}`))
		rr := httptest.NewRecorder()
		NewRevokeKeyHandler(svc, withPrincipal(testPrincipal)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"message":"API key revoked successfully","revoked_key_name":"ci"}`, rr.Body.String())
	})

	t.Run("unknown key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockKeyManager(ctrl)
		svc.EXPECT().Revoke(gomock.Any(), gomock.Any(), "sk_other").Return("", apperrors.ErrKeyNotFound)

		req := httptest.NewRequest(http.MethodPost, "/keys/revoke", bytes.NewBufferString(`{"api_key":"sk_other"}`))
		rr := httptest.NewRecorder()
		NewRevokeKeyHandler(svc, withPrincipal(testPrincipal)).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := NewMockKeyManager(ctrl)

		req := httptest.NewRequest(http.MethodPost, "/keys/revoke", bytes.NewBufferString(`{"api_key":"sk_abc"}`))
		rr := httptest.NewRecorder()
		NewRevokeKeyHandler(svc, noPrincipal).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
