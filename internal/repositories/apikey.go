package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
)

const apiKeySelect = `
	SELECT k.id, k.user_id, u.email AS owner_email, k.key_hash, k.name, k.permissions,
		k.expires_at, k.revoked, k.created_at, k.updated_at
	FROM api_keys k
	JOIN users u ON u.id = k.user_id
`

// APIKeyRepository stores hashed API keys.
type APIKeyRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewAPIKeyRepository(db *sqlx.DB, txGetter TxGetter) *APIKeyRepository {
	return &APIKeyRepository{db: db, txGetter: txGetter}
}

// Create inserts key and fills in its id and timestamps.
func (r *APIKeyRepository) Create(ctx context.Context, key *models.APIKeyDB) error {
	const query = `
		INSERT INTO api_keys (id, user_id, key_hash, name, permissions, expires_at, revoked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	if key.ID == uuid.Nil {
		key.ID = uuid.New()
	}
	args := []any{key.ID, key.UserID, key.KeyHash, key.Name, key.Permissions, key.ExpiresAt}

	row := executor(ctx, r.db, r.txGetter).QueryRowxContext(ctx, query, args...)
	err := row.Scan(&key.CreatedAt, &key.UpdatedAt)
	// The hash is left out of the log on purpose.
	logQuery(query, []any{key.ID, key.UserID, key.Name, key.Permissions, key.ExpiresAt}, key.ID, err)
	return err
}

// CountActive counts keys of the user that are neither revoked nor expired at now.
func (r *APIKeyRepository) CountActive(ctx context.Context, userID uuid.UUID, now time.Time) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM api_keys
		WHERE user_id = $1 AND revoked = FALSE AND expires_at > $2
	`
	args := []any{userID, now}

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, args...)
	logQuery(query, args, count, err)
	return count, err
}

// GetByHash returns nil when no key has this hash.
func (r *APIKeyRepository) GetByHash(ctx context.Context, keyHash string) (*models.APIKeyDB, error) {
	query := apiKeySelect + `WHERE k.key_hash = $1`
	return r.getOne(ctx, query, keyHash)
}

// GetUnrevokedByHash returns the user's non-revoked key with this hash, or nil.
func (r *APIKeyRepository) GetUnrevokedByHash(ctx context.Context, userID uuid.UUID, keyHash string) (*models.APIKeyDB, error) {
	query := apiKeySelect + `WHERE k.key_hash = $1 AND k.user_id = $2 AND k.revoked = FALSE FOR UPDATE OF k`
	return r.getOne(ctx, query, keyHash, userID)
}

func (r *APIKeyRepository) getOne(ctx context.Context, query string, args ...any) (*models.APIKeyDB, error) {
	var key models.APIKeyDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &key, query, args...)
	logQuery(query, args[1:], key.ID, err)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// Revoke marks the key revoked.
func (r *APIKeyRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE api_keys SET revoked = TRUE, updated_at = NOW() WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
