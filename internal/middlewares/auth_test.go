package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name           string
		headers        map[string]string
		mockSetup      func(tok *MockTokener, keys *MockAPIKeyAuthenticator)
		expectedStatus int
		expectedMode   models.AuthMode
	}{
		{
			name:           "NoCredentials",
			mockSetup:      func(tok *MockTokener, keys *MockAPIKeyAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "MalformedBearer",
			headers: map[string]string{"Authorization": "Token abc"},
			mockSetup: func(tok *MockTokener, keys *MockAPIKeyAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("invalid authorization header format"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "InvalidToken",
			headers: map[string]string{"Authorization": "Bearer sometoken"},
			mockSetup: func(tok *MockTokener, keys *MockAPIKeyAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("sometoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "sometoken").Return(nil, errors.New("expired"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "ValidToken",
			headers: map[string]string{"Authorization": "Bearer validtoken"},
			mockSetup: func(tok *MockTokener, keys *MockAPIKeyAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{UserID: userID, Email: "ada@example.com"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMode:   models.AuthModeFull,
		},
		{
			name: "BearerWinsOverAPIKey",
			headers: map[string]string{
				"Authorization": "Bearer validtoken",
				APIKeyHeader:    "sk_1",
			},
			mockSetup: func(tok *MockTokener, keys *MockAPIKeyAuthenticator) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").Return(&jwt.Claims{UserID: userID}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMode:   models.AuthModeFull,
		},
		{
			name:    "ValidAPIKey",
			headers: map[string]string{APIKeyHeader: "sk_1"},
			mockSetup: func(tok *MockTokener, keys *MockAPIKeyAuthenticator) {
				keys.EXPECT().AuthenticateAPIKey(gomock.Any(), "sk_1").Return(&models.Principal{
					UserID:      userID,
					Mode:        models.AuthModeScoped,
					Permissions: models.Permissions{models.PermissionRead},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMode:   models.AuthModeScoped,
		},
		{
			name:    "UnknownAPIKey",
			headers: map[string]string{APIKeyHeader: "sk_1"},
			mockSetup: func(tok *MockTokener, keys *MockAPIKeyAuthenticator) {
				keys.EXPECT().AuthenticateAPIKey(gomock.Any(), "sk_1").Return(nil, apperrors.ErrUnauthenticated)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "APIKeyLookupFailure",
			headers: map[string]string{APIKeyHeader: "sk_1"},
			mockSetup: func(tok *MockTokener, keys *MockAPIKeyAuthenticator) {
				keys.EXPECT().AuthenticateAPIKey(gomock.Any(), "sk_1").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tok := NewMockTokener(ctrl)
			keys := NewMockAPIKeyAuthenticator(ctrl)
			tt.mockSetup(tok, keys)

			var got *models.Principal
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = PrincipalFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()

			AuthMiddleware(tok, keys)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus != http.StatusOK {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, userID, got.UserID)
			assert.Equal(t, tt.expectedMode, got.Mode)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name           string
		principal      *models.Principal
		expectedStatus int
	}{
		{name: "NoPrincipal", expectedStatus: http.StatusUnauthorized},
		{name: "FullAccess", principal: &models.Principal{Mode: models.AuthModeFull}, expectedStatus: http.StatusOK},
		{
			name:           "ScopedWithPermission",
			principal:      &models.Principal{Mode: models.AuthModeScoped, Permissions: models.Permissions{models.PermissionDeposit}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "ScopedWithoutPermission",
			principal:      &models.Principal{Mode: models.AuthModeScoped, Permissions: models.Permissions{models.PermissionRead}},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", nil)
			if tt.principal != nil {
				req = req.WithContext(WithPrincipal(req.Context(), tt.principal))
			}
			rr := httptest.NewRecorder()

			RequirePermission(models.PermissionDeposit)(next).ServeHTTP(rr, req)
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestRequireFullAccess(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for mode, want := range map[models.AuthMode]int{
		models.AuthModeFull:   http.StatusOK,
		models.AuthModeScoped: http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodPost, "/keys/create", nil)
		req = req.WithContext(WithPrincipal(req.Context(), &models.Principal{Mode: mode}))
		rr := httptest.NewRecorder()

		RequireFullAccess(next).ServeHTTP(rr, req)
		assert.Equal(t, want, rr.Code, mode)
	}

	rr := httptest.NewRecorder()
	RequireFullAccess(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/keys/create", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
