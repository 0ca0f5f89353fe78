package repositories

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
)

const walletNumberAttempts = 5

var (
	walletNumberMin   = big.NewInt(1_000_000_000_000)
	walletNumberRange = big.NewInt(9_000_000_000_000)
)

const walletColumns = `id, wallet_number, balance, user_id, created_at, updated_at`

// WalletRepository handles wallet reads and atomic balance updates.
type WalletRepository struct {
	db           *sqlx.DB
	txGetter     TxGetter
	numberSource func() (string, error)
}

func NewWalletRepository(db *sqlx.DB, txGetter TxGetter) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter, numberSource: NewWalletNumber}
}

// NewWalletNumber returns a random 13-digit wallet number.
func NewWalletNumber() (string, error) {
	n, err := rand.Int(rand.Reader, walletNumberRange)
	if err != nil {
		return "", err
	}
	return n.Add(n, walletNumberMin).String(), nil
}

// GetOrCreate returns the user's wallet, creating an empty one if absent.
// A wallet number collision is retried with a fresh number.
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	wallet, err := r.GetByUserID(ctx, userID)
	if err != nil || wallet != nil {
		return wallet, err
	}

	const query = `
		INSERT INTO wallets (id, wallet_number, balance, user_id, created_at, updated_at)
		VALUES ($1, $2, 0, $3, NOW(), NOW())
		ON CONFLICT DO NOTHING
	`

	for attempt := 0; attempt < walletNumberAttempts; attempt++ {
		number, err := r.numberSource()
		if err != nil {
			return nil, fmt.Errorf("generate wallet number: %w", err)
		}

		args := []any{uuid.New(), number, userID}
		res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
		var rowsAffected int64
		if res != nil {
			rowsAffected, _ = res.RowsAffected()
		}
		logQuery(query, args, rowsAffected, err)
		if err != nil {
			return nil, err
		}

		// Nothing inserted means either a concurrent create for the same
		// user or a wallet number collision.
		wallet, err := r.GetByUserID(ctx, userID)
		if err != nil || wallet != nil {
			return wallet, err
		}
	}

	return nil, apperrors.ErrWalletNumberExhausted
}

// GetByUserID returns nil when the user has no wallet.
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByNumber returns nil when no wallet has this number.
func (r *WalletRepository) GetByNumber(ctx context.Context, walletNumber string) (*models.WalletDB, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_number = $1`
	return r.getOne(ctx, query, walletNumber)
}

func (r *WalletRepository) getOne(ctx context.Context, query string, arg any) (*models.WalletDB, error) {
	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &wallet, query, arg)
	logQuery(query, []any{arg}, wallet.Balance, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// Credit atomically adds amount to the wallet and returns the new balance.
func (r *WalletRepository) Credit(ctx context.Context, walletID uuid.UUID, amount int64) (int64, error) {
	const query = `
		UPDATE wallets
		SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2
		RETURNING balance
	`
	return r.updateBalance(ctx, query, amount, walletID)
}

// Debit atomically subtracts amount when the balance covers it.
// sql.ErrNoRows means the balance was too low.
func (r *WalletRepository) Debit(ctx context.Context, walletID uuid.UUID, amount int64) (int64, error) {
	const query = `
		UPDATE wallets
		SET balance = balance - $1, updated_at = NOW()
		WHERE id = $2 AND balance >= $1
		RETURNING balance
	`
	return r.updateBalance(ctx, query, amount, walletID)
}

func (r *WalletRepository) updateBalance(ctx context.Context, query string, amount int64, walletID uuid.UUID) (int64, error) {
	args := []any{amount, walletID}

	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, args...)
	logQuery(query, args, balance, err)
	return balance, err
}
