package middlewares

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/jwt"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/respond"
)

// APIKeyHeader carries an API key secret.
const APIKeyHeader = "x-api-key"

// Tokener defines the minimal interface needed to authenticate bearer tokens
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// APIKeyAuthenticator resolves the principal owning an API key secret.
type APIKeyAuthenticator interface {
	AuthenticateAPIKey(ctx context.Context, secret string) (*models.Principal, error)
}

type principalKey struct{}

// WithPrincipal stores the authenticated caller in ctx.
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller stored by AuthMiddleware.
func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*models.Principal)
	return p, ok && p != nil
}

// AuthMiddleware authenticates a bearer JWT or, when no Authorization header
// is sent, an API key. The bearer token wins when both are present.
func AuthMiddleware(tokener Tokener, keys APIKeyAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			var principal *models.Principal
			switch {
			case r.Header.Get("Authorization") != "":
				tokenString, err := tokener.GetTokenFromRequest(ctx, r)
				if err != nil {
					logger.Log.Warnw("authorization failed", "err", err)
					respond.Error(w, apperrors.ErrUnauthenticated)
					return
				}

				claims, err := tokener.GetClaims(ctx, tokenString)
				if err != nil {
					logger.Log.Warnw("authorization failed", "err", err)
					respond.Error(w, apperrors.ErrUnauthenticated)
					return
				}

				principal = &models.Principal{
					UserID: claims.UserID,
					Email:  claims.Email,
					Mode:   models.AuthModeFull,
				}

			case r.Header.Get(APIKeyHeader) != "":
				p, err := keys.AuthenticateAPIKey(ctx, r.Header.Get(APIKeyHeader))
				if err != nil {
					logger.Log.Warnw("api key authentication failed", "err", err)
					respond.Error(w, err)
					return
				}
				principal = p

			default:
				respond.Error(w, apperrors.ErrUnauthenticated)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
		})
	}
}

// RequirePermission lets scoped principals through only when they hold perm.
func RequirePermission(perm models.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				respond.Error(w, apperrors.ErrUnauthenticated)
				return
			}
			if !principal.Allows(perm) {
				logger.Log.Warnw("permission denied", "userID", principal.UserID, "permission", perm)
				respond.Error(w, apperrors.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireFullAccess rejects principals authenticated with an API key.
func RequireFullAccess(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, ok := PrincipalFromContext(r.Context())
		if !ok {
			respond.Error(w, apperrors.ErrUnauthenticated)
			return
		}
		if principal.Mode != models.AuthModeFull {
			respond.Error(w, apperrors.ErrBearerRequired)
			return
		}
		next.ServeHTTP(w, r)
	})
}
