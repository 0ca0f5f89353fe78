package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-paystack-wallet/internal/logger"
)

const oauthStatePrefix = "oauth_state:"

// OAuthStateRepository keeps single-use OAuth state values in Redis.
type OAuthStateRepository struct {
	client redis.Cmdable
	exp    time.Duration
}

// NewOAuthStateRepository creates a new repository with the given state lifetime.
func NewOAuthStateRepository(client redis.Cmdable, expiration time.Duration) *OAuthStateRepository {
	return &OAuthStateRepository{client: client, exp: expiration}
}

// Save stores state until it expires or is consumed.
func (r *OAuthStateRepository) Save(ctx context.Context, state string) error {
	key := oauthStatePrefix + state
	err := r.client.Set(ctx, key, "1", r.exp).Err()

	logger.Log.Debugw("oauth state saved",
		"ttl", r.exp,
		"error", err,
	)
	return err
}

// Consume deletes state and reports whether it existed.
func (r *OAuthStateRepository) Consume(ctx context.Context, state string) (bool, error) {
	key := oauthStatePrefix + state
	deleted, err := r.client.Del(ctx, key).Result()

	logger.Log.Debugw("oauth state consumed",
		"result", deleted,
		"error", err,
	)
	if err != nil {
		return false, err
	}
	return deleted == 1, nil
}
