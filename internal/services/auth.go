package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
)

// IdentityProvider signs users in with an external OAuth provider.
type IdentityProvider interface {
	AuthCodeURL(state string) string                                          // Builds the consent URL
	Exchange(ctx context.Context, code string) (*models.GoogleProfile, error) // Trades a code for a profile
}

// OAuthStateStore keeps short-lived OAuth state values.
type OAuthStateStore interface {
	Save(ctx context.Context, state string) error
	Consume(ctx context.Context, state string) (bool, error)
}

// UserUpserter creates or refreshes users from provider profiles.
type UserUpserter interface {
	Upsert(ctx context.Context, profile models.GoogleProfile) (*models.UserDB, error)
}

// WalletProvisioner returns the user's wallet, creating it when absent.
type WalletProvisioner interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// AuthService handles Google sign-in.
type AuthService struct {
	tx       Transactor
	provider IdentityProvider
	states   OAuthStateStore
	users    UserUpserter
	wallets  WalletProvisioner
	jwt      JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	tx Transactor,
	provider IdentityProvider,
	states OAuthStateStore,
	users UserUpserter,
	wallets WalletProvisioner,
	jwt JWTGenerator,
) *AuthService {
	return &AuthService{
		tx:       tx,
		provider: provider,
		states:   states,
		users:    users,
		wallets:  wallets,
		jwt:      jwt,
	}
}

// GoogleAuthURL issues a fresh state and returns the consent URL carrying it.
func (svc *AuthService) GoogleAuthURL(ctx context.Context) (string, error) {
	state, err := randomHex(16)
	if err != nil {
		logger.Log.Errorw("failed to generate oauth state", "err", err)
		return "", err
	}

	if err := svc.states.Save(ctx, state); err != nil {
		logger.Log.Errorw("failed to store oauth state", "err", err)
		return "", err
	}

	return svc.provider.AuthCodeURL(state), nil
}

// GoogleCallback completes sign-in: it checks state, exchanges the code,
// upserts the user, provisions the wallet and issues a JWT.
// An empty state is accepted for clients that build the consent URL themselves.
func (svc *AuthService) GoogleCallback(ctx context.Context, code, state string) (*models.SignIn, error) {
	signIn, err := svc.googleCallback(ctx, code, state)
	if err != nil {
		metrics.RecordSignIn("failure")
		return nil, err
	}
	metrics.RecordSignIn("success")
	return signIn, nil
}

func (svc *AuthService) googleCallback(ctx context.Context, code, state string) (*models.SignIn, error) {
	if code == "" {
		return nil, apperrors.ErrBadRequest
	}

	if state != "" {
		ok, err := svc.states.Consume(ctx, state)
		if err != nil {
			logger.Log.Errorw("failed to consume oauth state", "err", err)
			return nil, err
		}
		if !ok {
			logger.Log.Warnw("unknown or expired oauth state")
			return nil, apperrors.ErrInvalidState
		}
	}

	profile, err := svc.provider.Exchange(ctx, code)
	if err != nil {
		return nil, err
	}

	var signIn models.SignIn
	err = svc.tx.Do(ctx, func(ctx context.Context) error {
		user, err := svc.users.Upsert(ctx, *profile)
		if err != nil {
			logger.Log.Errorw("failed to upsert user", "email", profile.Email, "err", err)
			return err
		}

		wallet, err := svc.wallets.GetOrCreate(ctx, user.ID)
		if err != nil {
			logger.Log.Errorw("failed to provision wallet", "userID", user.ID, "err", err)
			return err
		}

		signIn.User = user
		signIn.Wallet = wallet
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := svc.jwt.Generate(ctx, signIn.User.ID, signIn.User.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, err
	}
	signIn.Token = token

	logger.Log.Infow("user signed in", "userID", signIn.User.ID)
	return &signIn, nil
}

// randomHex returns n random bytes hex encoded.
func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
