package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// WebhookEventRepository remembers which provider events were applied.
type WebhookEventRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewWebhookEventRepository(db *sqlx.DB, txGetter TxGetter) *WebhookEventRepository {
	return &WebhookEventRepository{db: db, txGetter: txGetter}
}

// MarkProcessed records eventKey and reports whether it was new.
// Call it inside the transaction that applies the event so a failed
// application does not leave the marker behind.
func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, eventKey string) (bool, error) {
	const query = `
		INSERT INTO webhook_events (event_key, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (event_key) DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, eventKey)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{eventKey}, rowsAffected, err)
	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
