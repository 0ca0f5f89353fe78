package facades

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"
)

// GoogleUserInfoURL is the OpenID Connect userinfo endpoint.
const GoogleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

// GoogleFacade signs users in with Google OAuth 2.0.
type GoogleFacade struct {
	config      *oauth2.Config
	userInfoURL string
	client      *http.Client
}

// GoogleOption configures a GoogleFacade.
type GoogleOption func(*GoogleFacade)

// WithGoogleEndpoint overrides the authorization and token endpoints.
func WithGoogleEndpoint(endpoint oauth2.Endpoint) GoogleOption {
	return func(f *GoogleFacade) {
		f.config.Endpoint = endpoint
	}
}

// WithGoogleUserInfoURL overrides the userinfo endpoint.
func WithGoogleUserInfoURL(url string) GoogleOption {
	return func(f *GoogleFacade) {
		f.userInfoURL = url
	}
}

// WithGoogleTimeout bounds every call made to Google.
func WithGoogleTimeout(timeout time.Duration) GoogleOption {
	return func(f *GoogleFacade) {
		f.client = &http.Client{Timeout: timeout}
	}
}

// NewGoogleFacade creates a facade for the given OAuth client.
func NewGoogleFacade(clientID, clientSecret, redirectURL string, opts ...GoogleOption) *GoogleFacade {
	f := &GoogleFacade{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     endpoints.Google,
		},
		userInfoURL: GoogleUserInfoURL,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// AuthCodeURL builds the consent screen URL carrying state.
func (f *GoogleFacade) AuthCodeURL(state string) string {
	return f.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades an authorization code for the user's profile.
func (f *GoogleFacade) Exchange(ctx context.Context, code string) (*models.GoogleProfile, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, f.client)

	token, err := f.config.Exchange(ctx, code)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.ErrorCode == "invalid_grant" {
			logger.Log.Warnw("google rejected authorization code", "description", retrieveErr.ErrorDescription)
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidGrant, retrieveErr.ErrorDescription)
		}
		logger.Log.Errorw("failed to exchange google authorization code", "error", err)
		return nil, fmt.Errorf("%w: token exchange: %v", apperrors.ErrIdentityProvider, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.userInfoURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.config.Client(ctx, token).Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch google profile", "error", err)
		return nil, fmt.Errorf("%w: userinfo: %v", apperrors.ErrIdentityProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("google userinfo returned unexpected status", "status", resp.StatusCode)
		return nil, fmt.Errorf("%w: userinfo status %d", apperrors.ErrIdentityProvider, resp.StatusCode)
	}

	var profile models.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		logger.Log.Errorw("failed to decode google profile", "error", err)
		return nil, fmt.Errorf("%w: userinfo decode: %v", apperrors.ErrIdentityProvider, err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("%w: profile has no email", apperrors.ErrIdentityProvider)
	}

	return &profile, nil
}
