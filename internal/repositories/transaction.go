package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/apperrors"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
)

const transactionColumns = `id, reference, amount, type, status, authorization_url,
	user_id, sender_id, receiver_id, paid_at, created_at, updated_at`

// TransactionRepository stores deposits and transfers.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionRepository(db *sqlx.DB, txGetter TxGetter) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

// Create inserts txn and fills in its id and timestamps.
func (r *TransactionRepository) Create(ctx context.Context, txn *models.TransactionDB) error {
	const query = `
		INSERT INTO transactions (id, reference, amount, type, status, authorization_url,
			user_id, sender_id, receiver_id, paid_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	args := []any{
		txn.ID, txn.Reference, txn.Amount, string(txn.Type), string(txn.Status), txn.AuthorizationURL,
		txn.UserID, txn.SenderID, txn.ReceiverID, txn.PaidAt,
	}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&txn.CreatedAt, &txn.UpdatedAt)
	logQuery(query, args, txn.ID, err)
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %s", apperrors.ErrReferenceConflict, txn.Reference)
	}
	return err
}

// GetByReference returns nil when the reference is unknown.
func (r *TransactionRepository) GetByReference(ctx context.Context, reference string) (*models.TransactionDB, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1`
	return r.getOne(ctx, query, reference)
}

// GetByReferenceForUpdate is GetByReference holding a row lock until the
// surrounding transaction ends.
func (r *TransactionRepository) GetByReferenceForUpdate(ctx context.Context, reference string) (*models.TransactionDB, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1 FOR UPDATE`
	return r.getOne(ctx, query, reference)
}

func (r *TransactionRepository) getOne(ctx context.Context, query, reference string) (*models.TransactionDB, error) {
	var txn models.TransactionDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &txn, query, reference)
	logQuery(query, []any{reference}, txn.Status, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

// Settle moves a pending transaction to its final status.
// sql.ErrNoRows means the transaction was not pending.
func (r *TransactionRepository) Settle(ctx context.Context, reference string, status models.TransactionStatus, amount int64, paidAt *time.Time) error {
	const query = `
		UPDATE transactions
		SET status = $1, amount = $2, paid_at = $3, updated_at = NOW()
		WHERE reference = $4 AND status = 'pending'
	`
	args := []any{string(status), amount, paidAt, reference}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByUserID returns every transaction the user paid, sent or received.
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.TransactionDB, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 OR sender_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC
	`

	txns := []models.TransactionDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &txns, query, userID)
	logQuery(query, []any{userID}, len(txns), err)
	return txns, err
}
