package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/models"
)

// UserRepository stores users signed in with Google.
type UserRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRepository(db *sqlx.DB, txGetter TxGetter) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// Upsert creates the user on first sign-in and refreshes the profile afterwards.
func (r *UserRepository) Upsert(ctx context.Context, profile models.GoogleProfile) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (id, google_id, email, name, picture, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET google_id = EXCLUDED.google_id,
		    name = EXCLUDED.name,
		    picture = EXCLUDED.picture,
		    updated_at = NOW()
		RETURNING id, google_id, email, name, picture, created_at, updated_at
	`
	args := []any{uuid.New(), profile.Sub, profile.Email, profile.Name, profile.Picture}

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, args...)
	logQuery(query, args, user.ID, err)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// LockByID takes a row lock on the user for the rest of the transaction.
func (r *UserRepository) LockByID(ctx context.Context, id uuid.UUID) error {
	const query = `SELECT id FROM users WHERE id = $1 FOR UPDATE`

	var locked uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &locked, query, id)
	logQuery(query, []any{id}, locked, err)
	return err
}
