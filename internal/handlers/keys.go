package handlers

//go:generate mockgen -source=keys.go -destination=keys_mock.go -package=handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/respond"
)

// KeyManager issues, rotates and revokes API keys.
type KeyManager interface {
	Create(ctx context.Context, userID uuid.UUID, name string, permissions []string, expiry string) (*models.IssuedKey, error)
	Rollover(ctx context.Context, userID uuid.UUID, expiredSecret, expiry string) (*models.IssuedKey, error)
	Revoke(ctx context.Context, userID uuid.UUID, secret string) (string, error)
}

func keyResponse(issued *models.IssuedKey) models.KeyResponse {
	return models.KeyResponse{
		APIKey:    issued.Secret,
		ExpiresAt: issued.ExpiresAt.UTC().Format(time.RFC3339),
	}
}

// NewCreateKeyHandler returns an HTTP handler that issues an API key.
// @Summary Create API key
// @Description Issues a scoped API key. The secret is returned only once. At most 5 keys may be active.
// @Tags keys
// @Accept json
// @Produce json
// @Param request body models.CreateKeyRequest true "Key Request"
// @Success 201 {object} models.KeyResponse "Key issued"
// @Failure 400 {object} respond.ErrorResponse "invalid_input"
// @Failure 401 {object} respond.ErrorResponse "Unauthorized"
// @Failure 403 {object} respond.ErrorResponse "limit_exceeded or bearer token required"
// @Router /keys/create [post]
// @Security BearerAuth
func NewCreateKeyHandler(svc KeyManager, principalGetter PrincipalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, ok := principalGetter(ctx)
		if !ok {
			respond.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		var req models.CreateKeyRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		issued, err := svc.Create(ctx, principal.UserID, req.Name, req.Permissions, req.Expiry)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusCreated, keyResponse(issued))
	}
}

// NewRolloverKeyHandler returns an HTTP handler that replaces an expired API key.
// @Summary Roll over API key
// @Description Revokes an expired key and issues a new one with the same name and permissions.
// @Tags keys
// @Accept json
// @Produce json
// @Param request body models.RolloverKeyRequest true "Rollover Request"
// @Success 200 {object} models.KeyResponse "Key issued"
// @Failure 400 {object} respond.ErrorResponse "invalid_input or key_not_expired"
// @Failure 401 {object} respond.ErrorResponse "Unauthorized"
// @Failure 404 {object} respond.ErrorResponse "key_not_found"
// @Router /keys/rollover [post]
// @Security BearerAuth
func NewRolloverKeyHandler(svc KeyManager, principalGetter PrincipalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, ok := principalGetter(ctx)
		if !ok {
			respond.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		var req models.RolloverKeyRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		issued, err := svc.Rollover(ctx, principal.UserID, req.ExpiredKeyID, req.Expiry)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, keyResponse(issued))
	}
}

// NewRevokeKeyHandler returns an HTTP handler that revokes an API key.
// @Summary Revoke API key
// @Tags keys
// @Accept json
// @Produce json
// @Param request body models.RevokeKeyRequest true "Revoke Request"
// @Success 200 {object} models.RevokeKeyResponse "Key revoked"
// @Failure 400 {object} respond.ErrorResponse "invalid_input"
// @Failure 401 {object} respond.ErrorResponse "Unauthorized"
// @Failure 404 {object} respond.ErrorResponse "key_not_found"
// @Router /keys/revoke [post]
// @Security BearerAuth
func NewRevokeKeyHandler(svc KeyManager, principalGetter PrincipalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		principal, ok := principalGetter(ctx)
		if !ok {
			respond.Error(w, apperrors.ErrUnauthenticated)
			return
		}

		var req models.RevokeKeyRequest
		if err := decodeJSON(w, r, &req); err != nil {
			respond.Error(w, err)
			return
		}

		name, err := svc.Revoke(ctx, principal.UserID, req.APIKey)
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, models.RevokeKeyResponse{
			Message:        "API key revoked successfully",
			RevokedKeyName: name,
		})
	}
}
