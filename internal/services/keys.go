package services

//go:generate mockgen -source=keys.go -destination=keys_mock.go -package=services

import (
	"context"
	"database/sql"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/metrics"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"golang.org/x/crypto/sha3"
)

// APIKeySecretPrefix starts every issued API key secret.
const APIKeySecretPrefix = "sk_"

// APIKeyStore persists API keys by hash.
type APIKeyStore interface {
	Create(ctx context.Context, key *models.APIKeyDB) error
	CountActive(ctx context.Context, userID uuid.UUID, now time.Time) (int, error)
	GetByHash(ctx context.Context, keyHash string) (*models.APIKeyDB, error)                            // Any key, joined with its owner
	GetUnrevokedByHash(ctx context.Context, userID uuid.UUID, keyHash string) (*models.APIKeyDB, error) // Locks the row
	Revoke(ctx context.Context, id uuid.UUID) error
}

// UserLocker serializes per-user key operations.
type UserLocker interface {
	LockByID(ctx context.Context, id uuid.UUID) error
}

// KeyService issues, rotates, revokes and authenticates API keys.
type KeyService struct {
	tx    Transactor
	keys  APIKeyStore
	users UserLocker
	now   func() time.Time
}

// KeyServiceOption configures a KeyService.
type KeyServiceOption func(*KeyService)

// WithClock replaces the wall clock used for expiry checks.
func WithClock(now func() time.Time) KeyServiceOption {
	return func(s *KeyService) {
		s.now = now
	}
}

// NewKeyService creates a new KeyService.
func NewKeyService(tx Transactor, keys APIKeyStore, users UserLocker, opts ...KeyServiceOption) *KeyService {
	s := &KeyService{
		tx:    tx,
		keys:  keys,
		users: users,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// HashAPIKey returns the hex SHA3-256 digest stored for a secret.
func HashAPIKey(secret string) string {
	sum := sha3.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func newAPIKeySecret() (string, error) {
	raw, err := randomHex(32)
	if err != nil {
		return "", err
	}
	return APIKeySecretPrefix + raw, nil
}

// Create issues a new key. The plaintext secret is only returned here.
func (s *KeyService) Create(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	permissions []string,
	expiry string,
) (*models.IssuedKey, error) {
	perms, ok := models.ParsePermissions(permissions)
	if !ok {
		return nil, apperrors.ErrInvalidPermission
	}
	lifetime, ok := models.Expiry(expiry).Duration()
	if !ok {
		return nil, apperrors.ErrInvalidExpiry
	}

	var issued *models.IssuedKey
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.users.LockByID(ctx, userID); err != nil {
			return err
		}
		var err error
		issued, err = s.issue(ctx, userID, name, perms, lifetime)
		return err
	})
	if err != nil {
		s.logFailure("create", userID, err)
		return nil, err
	}

	metrics.RecordAPIKey("create")
	logger.Log.Infow("api key created", "userID", userID, "name", name, "expiresAt", issued.ExpiresAt)
	return issued, nil
}

// Rollover replaces an expired key with a new one carrying the same name
// and permissions.
func (s *KeyService) Rollover(ctx context.Context, userID uuid.UUID, expiredSecret, expiry string) (*models.IssuedKey, error) {
	lifetime, ok := models.Expiry(expiry).Duration()
	if !ok {
		return nil, apperrors.ErrInvalidExpiry
	}

	var issued *models.IssuedKey
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.users.LockByID(ctx, userID); err != nil {
			return err
		}

		old, err := s.keys.GetUnrevokedByHash(ctx, userID, HashAPIKey(expiredSecret))
		if err != nil {
			return err
		}
		if old == nil {
			return apperrors.ErrKeyNotFound
		}
		if old.ExpiresAt.After(s.now()) {
			return apperrors.ErrKeyNotExpired
		}

		if err := s.keys.Revoke(ctx, old.ID); err != nil {
			return err
		}

		issued, err = s.issue(ctx, userID, old.Name, old.Permissions, lifetime)
		return err
	})
	if err != nil {
		s.logFailure("rollover", userID, err)
		return nil, err
	}

	metrics.RecordAPIKey("rollover")
	logger.Log.Infow("api key rolled over", "userID", userID, "expiresAt", issued.ExpiresAt)
	return issued, nil
}

// Revoke disables a key of userID and returns its name.
func (s *KeyService) Revoke(ctx context.Context, userID uuid.UUID, secret string) (string, error) {
	var name string
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		key, err := s.keys.GetUnrevokedByHash(ctx, userID, HashAPIKey(secret))
		if err != nil {
			return err
		}
		if key == nil {
			return apperrors.ErrKeyNotFound
		}

		if err := s.keys.Revoke(ctx, key.ID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperrors.ErrKeyNotFound
			}
			return err
		}
		name = key.Name
		return nil
	})
	if err != nil {
		s.logFailure("revoke", userID, err)
		return "", err
	}

	metrics.RecordAPIKey("revoke")
	logger.Log.Infow("api key revoked", "userID", userID, "name", name)
	return name, nil
}

// CountActive returns the number of keys that are neither revoked nor expired.
func (s *KeyService) CountActive(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.keys.CountActive(ctx, userID, s.now())
}

// AuthenticateAPIKey resolves the principal owning secret.
func (s *KeyService) AuthenticateAPIKey(ctx context.Context, secret string) (*models.Principal, error) {
	key, err := s.keys.GetByHash(ctx, HashAPIKey(secret))
	if err != nil {
		logger.Log.Errorw("failed to look up api key", "error", err)
		return nil, err
	}
	if key == nil || !key.Usable(s.now()) {
		return nil, apperrors.ErrUnauthenticated
	}

	return &models.Principal{
		UserID:      key.UserID,
		Email:       key.OwnerEmail,
		Mode:        models.AuthModeScoped,
		Permissions: key.Permissions,
	}, nil
}

// issue stores a new key. The caller holds the user row lock.
func (s *KeyService) issue(
	ctx context.Context,
	userID uuid.UUID,
	name string,
	perms models.Permissions,
	lifetime time.Duration,
) (*models.IssuedKey, error) {
	now := s.now()

	active, err := s.keys.CountActive(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if active >= models.MaxActiveAPIKeys {
		return nil, apperrors.ErrTooManyActiveKeys
	}

	secret, err := newAPIKeySecret()
	if err != nil {
		return nil, err
	}

	key := &models.APIKeyDB{
		ID:          uuid.New(),
		UserID:      userID,
		KeyHash:     HashAPIKey(secret),
		Name:        name,
		Permissions: perms,
		ExpiresAt:   now.Add(lifetime),
	}
	if err := s.keys.Create(ctx, key); err != nil {
		return nil, err
	}

	return &models.IssuedKey{Secret: secret, ExpiresAt: key.ExpiresAt}, nil
}

func (s *KeyService) logFailure(op string, userID uuid.UUID, err error) {
	if _, ok := apperrors.From(err); ok {
		logger.Log.Warnw("api key operation rejected", "operation", op, "userID", userID, "error", err)
		return
	}
	logger.Log.Errorw("api key operation failed", "operation", op, "userID", userID, "error", err)
}
