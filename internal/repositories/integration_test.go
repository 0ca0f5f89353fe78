//go:build integration

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/txmanager"
	"github.com/sbilibin2017/gw-paystack-wallet/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://user:password@%s:%s/testdb?sslmode=disable", host, port.Port())
	require.NoError(t, migrations.Up(dsn))
	// A second run is a no-op.
	require.NoError(t, migrations.Up(dsn))

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRepositories_Postgres(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()
	txm := txmanager.New(db)

	users := NewUserRepository(db, txmanager.GetTxFromContext)
	wallets := NewWalletRepository(db, txmanager.GetTxFromContext)
	txns := NewTransactionRepository(db, txmanager.GetTxFromContext)
	keys := NewAPIKeyRepository(db, txmanager.GetTxFromContext)
	events := NewWebhookEventRepository(db, txmanager.GetTxFromContext)

	ada, err := users.Upsert(ctx, models.GoogleProfile{Sub: "g-ada", Email: "ada@example.com", Name: "Ada"})
	require.NoError(t, err)
	again, err := users.Upsert(ctx, models.GoogleProfile{Sub: "g-ada", Email: "ada@example.com", Name: "Ada L."})
	require.NoError(t, err)
	assert.Equal(t, ada.ID, again.ID)
	assert.Equal(t, "Ada L.", again.Name)

	bob, err := users.Upsert(ctx, models.GoogleProfile{Sub: "g-bob", Email: "bob@example.com", Name: "Bob"})
	require.NoError(t, err)

	t.Run("wallet is created once", func(t *testing.T) {
		w1, err := wallets.GetOrCreate(ctx, ada.ID)
		require.NoError(t, err)
		w2, err := wallets.GetOrCreate(ctx, ada.ID)
		require.NoError(t, err)
		assert.Equal(t, w1.ID, w2.ID)
		assert.Len(t, w1.WalletNumber, models.WalletNumberLength)
		assert.Zero(t, w1.Balance)

		byNumber, err := wallets.GetByNumber(ctx, w1.WalletNumber)
		require.NoError(t, err)
		assert.Equal(t, ada.ID, byNumber.UserID)
	})

	t.Run("debit never goes negative", func(t *testing.T) {
		w, err := wallets.GetOrCreate(ctx, bob.ID)
		require.NoError(t, err)

		balance, err := wallets.Credit(ctx, w.ID, 5000)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), balance)

		_, err = wallets.Debit(ctx, w.ID, 5001)
		assert.ErrorIs(t, err, sql.ErrNoRows)

		balance, err = wallets.Debit(ctx, w.ID, 5000)
		require.NoError(t, err)
		assert.Zero(t, balance)
	})

	t.Run("rolled back transaction leaves no trace", func(t *testing.T) {
		w, err := wallets.GetOrCreate(ctx, ada.ID)
		require.NoError(t, err)

		boom := errors.New("boom")
		err = txm.Do(ctx, func(ctx context.Context) error {
			if _, err := wallets.Credit(ctx, w.ID, 700); err != nil {
				return err
			}
			if _, err := events.MarkProcessed(ctx, "charge.success:dep_rollback"); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		after, err := wallets.GetByUserID(ctx, ada.ID)
		require.NoError(t, err)
		assert.Equal(t, w.Balance, after.Balance)

		fresh, err := events.MarkProcessed(ctx, "charge.success:dep_rollback")
		require.NoError(t, err)
		assert.True(t, fresh)
	})

	t.Run("webhook marker is single use", func(t *testing.T) {
		first, err := events.MarkProcessed(ctx, "charge.success:dep_once")
		require.NoError(t, err)
		second, err := events.MarkProcessed(ctx, "charge.success:dep_once")
		require.NoError(t, err)
		assert.True(t, first)
		assert.False(t, second)
	})

	t.Run("deposit settles once", func(t *testing.T) {
		authURL := "https://checkout.paystack.com/abc"
		txn := &models.TransactionDB{
			Reference:        "dep_integration",
			Amount:           5000,
			Type:             models.TransactionDeposit,
			Status:           models.StatusPending,
			AuthorizationURL: &authURL,
			UserID:           uuid.NullUUID{UUID: ada.ID, Valid: true},
		}
		require.NoError(t, txns.Create(ctx, txn))

		paidAt := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, txns.Settle(ctx, txn.Reference, models.StatusSuccess, 5000, &paidAt))
		assert.ErrorIs(t, txns.Settle(ctx, txn.Reference, models.StatusFailed, 5000, nil), sql.ErrNoRows)

		got, err := txns.GetByReference(ctx, txn.Reference)
		require.NoError(t, err)
		assert.Equal(t, models.StatusSuccess, got.Status)
		require.NotNil(t, got.PaidAt)

		history, err := txns.ListByUserID(ctx, ada.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, txn.Reference, history[0].Reference)

		missing, err := txns.GetByReference(ctx, "dep_missing")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("api keys", func(t *testing.T) {
		now := time.Now()
		live := &models.APIKeyDB{
			UserID:      ada.ID,
			KeyHash:     "hash-live",
			Name:        "ci",
			Permissions: models.Permissions{models.PermissionRead, models.PermissionDeposit},
			ExpiresAt:   now.Add(time.Hour),
		}
		expired := &models.APIKeyDB{
			UserID:      ada.ID,
			KeyHash:     "hash-expired",
			Name:        "old",
			Permissions: models.Permissions{models.PermissionRead},
			ExpiresAt:   now.Add(-time.Hour),
		}
		require.NoError(t, keys.Create(ctx, live))
		require.NoError(t, keys.Create(ctx, expired))

		count, err := keys.CountActive(ctx, ada.ID, now)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := keys.GetByHash(ctx, "hash-live")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "ada@example.com", got.OwnerEmail)
		assert.Equal(t, live.Permissions, got.Permissions)

		other, err := keys.GetUnrevokedByHash(ctx, bob.ID, "hash-live")
		require.NoError(t, err)
		assert.Nil(t, other)

		require.NoError(t, keys.Revoke(ctx, live.ID))
		count, err = keys.CountActive(ctx, ada.ID, now)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("user lock requires a known user", func(t *testing.T) {
		err := txm.Do(ctx, func(ctx context.Context) error {
			return users.LockByID(ctx, uuid.New())
		})
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}
