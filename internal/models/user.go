package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	GoogleID  string    `json:"google_id" db:"google_id"`   // Subject of the Google account
	Email     string    `json:"email" db:"email"`           // Unique email
	Name      string    `json:"name" db:"name"`             // Display name
	Picture   string    `json:"picture" db:"picture"`       // Avatar URL
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}

// GoogleProfile is the subset of the Google userinfo response the service keeps.
type GoogleProfile struct {
	Sub     string `json:"sub"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// SignIn is the outcome of a successful Google callback.
type SignIn struct {
	User   *UserDB
	Wallet *WalletDB
	Token  string
}
