package models

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType distinguishes deposits from transfers.
type TransactionType string

const (
	TransactionDeposit  TransactionType = "deposit"
	TransactionTransfer TransactionType = "transfer"
)

// TransactionStatus is the settlement state of a transaction.
// A transaction only ever moves from pending to success or failed.
type TransactionStatus string

const (
	StatusPending TransactionStatus = "pending"
	StatusSuccess TransactionStatus = "success"
	StatusFailed  TransactionStatus = "failed"
)

// TransactionDB represents a transaction row in the database
type TransactionDB struct {
	ID               uuid.UUID         `db:"id"`
	Reference        string            `db:"reference"`
	Amount           int64             `db:"amount"`
	Type             TransactionType   `db:"type"`
	Status           TransactionStatus `db:"status"`
	AuthorizationURL *string           `db:"authorization_url"` // Hosted checkout, deposits only
	UserID           uuid.NullUUID     `db:"user_id"`           // Payer, deposits only
	SenderID         uuid.NullUUID     `db:"sender_id"`         // Transfers only
	ReceiverID       uuid.NullUUID     `db:"receiver_id"`       // Transfers only
	PaidAt           *time.Time        `db:"paid_at"`
	CreatedAt        time.Time         `db:"created_at"`
	UpdatedAt        time.Time         `db:"updated_at"`
}

// IsPayer reports whether userID initiated this deposit.
func (t *TransactionDB) IsPayer(userID uuid.UUID) bool {
	return t.UserID.Valid && t.UserID.UUID == userID
}

// LedgerEvent is published to Kafka whenever a wallet balance changes.
type LedgerEvent struct {
	EventID      string          `json:"event_id"`
	Type         TransactionType `json:"type"`
	Reference    string          `json:"reference"`
	Amount       int64           `json:"amount"`
	UserID       string          `json:"user_id"`                // Credited user for deposits, sender for transfers
	Counterparty string          `json:"counterparty,omitempty"` // Receiver for transfers
	Timestamp    int64           `json:"timestamp"`
}
