package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var walletRowColumns = []string{"id", "wallet_number", "balance", "user_id", "created_at", "updated_at"}

func TestNewWalletNumber(t *testing.T) {
	for i := 0; i < 100; i++ {
		number, err := NewWalletNumber()
		require.NoError(t, err)
		assert.Len(t, number, 13)
		assert.NotEqual(t, byte('0'), number[0])
		for _, c := range number {
			assert.True(t, c >= '0' && c <= '9')
		}
	}
}

func TestWalletRepository_GetOrCreate_Existing(t *testing.T) {
	db, mock := newMockDB(t)
	userID, walletID := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(q("FROM wallets WHERE user_id = $1")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(walletRowColumns).
			AddRow(walletID.String(), "4829301746523", int64(700), userID.String(), now, now))

	wallet, err := NewWalletRepository(db, nil).GetOrCreate(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, walletID, wallet.ID)
	assert.Equal(t, int64(700), wallet.Balance)
}

func TestWalletRepository_GetOrCreate_RetriesOnNumberCollision(t *testing.T) {
	db, mock := newMockDB(t)
	userID, walletID := uuid.New(), uuid.New()
	now := time.Now()

	numbers := []string{"1111111111111", "2222222222222"}
	repo := NewWalletRepository(db, nil)
	repo.numberSource = func() (string, error) {
		n := numbers[0]
		numbers = numbers[1:]
		return n, nil
	}

	mock.ExpectQuery(q("FROM wallets WHERE user_id = $1")).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(walletRowColumns))

	// First number collides, nothing inserted.
	mock.ExpectExec(q("INSERT INTO wallets")).
		WithArgs(sqlmock.AnyArg(), "1111111111111", userID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(q("FROM wallets WHERE user_id = $1")).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(walletRowColumns))

	mock.ExpectExec(q("INSERT INTO wallets")).
		WithArgs(sqlmock.AnyArg(), "2222222222222", userID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(q("FROM wallets WHERE user_id = $1")).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(walletRowColumns).
			AddRow(walletID.String(), "2222222222222", int64(0), userID.String(), now, now))

	wallet, err := repo.GetOrCreate(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "2222222222222", wallet.WalletNumber)
	assert.Equal(t, int64(0), wallet.Balance)
}

func TestWalletRepository_GetOrCreate_Exhausted(t *testing.T) {
	db, mock := newMockDB(t)
	userID := uuid.New()

	repo := NewWalletRepository(db, nil)
	repo.numberSource = func() (string, error) { return "1111111111111", nil }

	mock.ExpectQuery(q("FROM wallets WHERE user_id = $1")).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(walletRowColumns))
	for i := 0; i < walletNumberAttempts; i++ {
		mock.ExpectExec(q("INSERT INTO wallets")).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(q("FROM wallets WHERE user_id = $1")).WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(walletRowColumns))
	}

	wallet, err := repo.GetOrCreate(context.Background(), userID)

	assert.Nil(t, wallet)
	assert.ErrorIs(t, err, apperrors.ErrWalletNumberExhausted)
}

func TestWalletRepository_GetByNumber_NotFound(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(q("FROM wallets WHERE wallet_number = $1")).
		WithArgs("4829301746523").
		WillReturnRows(sqlmock.NewRows(walletRowColumns))

	wallet, err := NewWalletRepository(db, nil).GetByNumber(context.Background(), "4829301746523")

	assert.NoError(t, err)
	assert.Nil(t, wallet)
}

func TestWalletRepository_Credit(t *testing.T) {
	db, mock := newMockDB(t)
	walletID := uuid.New()

	mock.ExpectQuery(q("SET balance = balance + $1")).
		WithArgs(int64(5000), walletID).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(5000)))

	balance, err := NewWalletRepository(db, nil).Credit(context.Background(), walletID, 5000)

	assert.NoError(t, err)
	assert.Equal(t, int64(5000), balance)
}

func TestWalletRepository_Debit(t *testing.T) {
	walletID := uuid.New()

	t.Run("covered", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q("SET balance = balance - $1")+".*"+q("AND balance >= $1")).
			WithArgs(int64(300), walletID).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(700)))

		balance, err := NewWalletRepository(db, nil).Debit(context.Background(), walletID, 300)
		assert.NoError(t, err)
		assert.Equal(t, int64(700), balance)
	})

	t.Run("insufficient", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(q("SET balance = balance - $1")).
			WithArgs(int64(3000), walletID).
			WillReturnRows(sqlmock.NewRows([]string{"balance"}))

		_, err := NewWalletRepository(db, nil).Debit(context.Background(), walletID, 3000)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})
}

func TestWalletRepository_UsesTransactionFromContext(t *testing.T) {
	db, mock := newMockDB(t)
	walletID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery(q("SET balance = balance + $1")).
		WithArgs(int64(10), walletID).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow(int64(10)))
	mock.ExpectCommit()

	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewWalletRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })
	_, err = repo.Credit(context.Background(), walletID, 10)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
}
