package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var apiKeyRowColumns = []string{
	"id", "user_id", "owner_email", "key_hash", "name", "permissions",
	"expires_at", "revoked", "created_at", "updated_at",
}

func TestAPIKeyRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	now := time.Now()
	expiresAt := now.Add(time.Hour)

	key := &models.APIKeyDB{
		UserID:      userID,
		KeyHash:     "abc123",
		Name:        "reporting",
		Permissions: models.Permissions{models.PermissionRead},
		ExpiresAt:   expiresAt,
	}

	mock.ExpectQuery(q("INSERT INTO api_keys")).
		WithArgs(sqlmock.AnyArg(), userID, "abc123", "reporting", `["read"]`, expiresAt).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	err := NewAPIKeyRepository(db, nil).Create(context.Background(), key)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, key.ID)
}

func TestAPIKeyRepository_CountActive(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(q("SELECT COUNT(*) FROM api_keys WHERE user_id = $1 AND revoked = FALSE AND expires_at > $2")).
		WithArgs(userID, now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := NewAPIKeyRepository(db, nil).CountActive(context.Background(), userID, now)

	assert.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAPIKeyRepository_GetByHash(t *testing.T) {
	db, mock := newMockDB(t)
	keyID, userID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(q("JOIN users u ON u.id = k.user_id WHERE k.key_hash = $1")).
		WithArgs("abc123").
		WillReturnRows(sqlmock.NewRows(apiKeyRowColumns).
			AddRow(keyID.String(), userID.String(), "ada@example.com", "abc123", "reporting",
				[]byte(`["read","transfer"]`), now.Add(time.Hour), false, now, now))

	key, err := NewAPIKeyRepository(db, nil).GetByHash(context.Background(), "abc123")

	require.NoError(t, err)
	assert.Equal(t, keyID, key.ID)
	assert.Equal(t, "ada@example.com", key.OwnerEmail)
	assert.Equal(t, models.Permissions{models.PermissionRead, models.PermissionTransfer}, key.Permissions)
	assert.True(t, key.Usable(now))
}

func TestAPIKeyRepository_GetUnrevokedByHash_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	mock.ExpectQuery(q("WHERE k.key_hash = $1 AND k.user_id = $2 AND k.revoked = FALSE")).
		WithArgs("abc123", userID).
		WillReturnRows(sqlmock.NewRows(apiKeyRowColumns))

	key, err := NewAPIKeyRepository(db, nil).GetUnrevokedByHash(context.Background(), userID, "abc123")

	assert.NoError(t, err)
	assert.Nil(t, key)
}

func TestAPIKeyRepository_Revoke(t *testing.T) {
	keyID := uuid.New()

	t.Run("revoked", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(q("UPDATE api_keys SET revoked = TRUE")).
			WithArgs(keyID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewAPIKeyRepository(db, nil).Revoke(context.Background(), keyID))
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(q("UPDATE api_keys SET revoked = TRUE")).
			WithArgs(keyID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, NewAPIKeyRepository(db, nil).Revoke(context.Background(), keyID), sql.ErrNoRows)
	})
}
