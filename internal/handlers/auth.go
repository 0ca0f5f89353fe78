package handlers

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/middlewares"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/respond"
)

// GoogleAuthURLer builds the Google consent URL.
type GoogleAuthURLer interface {
	GoogleAuthURL(ctx context.Context) (string, error)
}

// GoogleSignIner completes the Google OAuth callback.
type GoogleSignIner interface {
	GoogleCallback(ctx context.Context, code, state string) (*models.SignIn, error)
}

// NewGoogleAuthHandler returns an HTTP handler that starts Google sign-in.
// @Summary Start Google sign-in
// @Description Redirects to the Google consent screen. Clients sending Accept: application/json receive the URL instead.
// @Tags auth
// @Produce json
// @Success 200 {object} models.GoogleAuthURLResponse "Consent URL"
// @Success 302 "Redirect to Google"
// @Failure 429 {object} respond.ErrorResponse "Too many requests"
// @Failure 500 {object} respond.ErrorResponse "Internal server error"
// @Router /auth/google [get]
func NewGoogleAuthHandler(svc GoogleAuthURLer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url, err := svc.GoogleAuthURL(r.Context())
		if err != nil {
			respond.Error(w, err)
			return
		}

		if strings.Contains(r.Header.Get("Accept"), "application/json") {
			respond.JSON(w, http.StatusOK, models.GoogleAuthURLResponse{GoogleAuthURL: url})
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}

// NewGoogleCallbackHandler returns an HTTP handler that finishes Google sign-in.
// @Summary Google sign-in callback
// @Description Exchanges the authorization code, creates the user and wallet on first sign-in and issues a JWT.
// @Tags auth
// @Produce json
// @Param code query string false "Authorization code"
// @Param state query string false "OAuth state"
// @Param error query string false "Error reported by Google"
// @Success 200 {object} models.SignInResponse "Signed in"
// @Failure 400 {object} respond.ErrorResponse "access_denied or bad_request"
// @Failure 401 {object} respond.ErrorResponse "invalid_grant"
// @Failure 500 {object} respond.ErrorResponse "provider_error or internal_error"
// @Router /auth/google/callback [get]
func NewGoogleCallbackHandler(svc GoogleSignIner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		if providerErr := q.Get("error"); providerErr != "" {
			logger.Log.Warnw("google reported sign-in error",
				"error", providerErr,
				"requestID", middlewares.RequestIDFromContext(r.Context()),
			)
			if providerErr == "access_denied" {
				respond.Error(w, apperrors.ErrAccessDenied)
				return
			}
			respond.Error(w, apperrors.ErrBadRequest)
			return
		}

		signIn, err := svc.GoogleCallback(r.Context(), q.Get("code"), q.Get("state"))
		if err != nil {
			respond.Error(w, err)
			return
		}

		respond.JSON(w, http.StatusOK, models.SignInResponse{
			UserID:  signIn.User.ID.String(),
			Email:   signIn.User.Email,
			Name:    signIn.User.Name,
			Wallet:  signIn.Wallet.WalletNumber,
			Picture: signIn.User.Picture,
			Token:   signIn.Token,
		})
	}
}
