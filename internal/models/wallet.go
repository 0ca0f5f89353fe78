package models

import (
	"time"

	"github.com/google/uuid"
)

// WalletNumberLength is the number of digits in a public wallet number.
const WalletNumberLength = 13

// WalletDB represents a wallet row in the database
type WalletDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                       // Unique wallet identifier
	WalletNumber string    `json:"wallet_number" db:"wallet_number"` // Public 13-digit identifier
	Balance      int64     `json:"balance" db:"balance"`             // Balance in minor units (kobo)
	UserID       uuid.UUID `json:"user_id" db:"user_id"`             // Identifier of the wallet's owner
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Timestamp when the wallet was created
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Timestamp of the last wallet update
}
