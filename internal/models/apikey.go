package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// MaxActiveAPIKeys is the number of usable keys a user may hold at once.
const MaxActiveAPIKeys = 5

// Permission is a single capability granted to an API key.
type Permission string

const (
	PermissionDeposit  Permission = "deposit"
	PermissionTransfer Permission = "transfer"
	PermissionRead     Permission = "read"
)

// Valid reports whether p is a known permission.
func (p Permission) Valid() bool {
	switch p {
	case PermissionDeposit, PermissionTransfer, PermissionRead:
		return true
	}
	return false
}

// Permissions is a permission set stored as a JSON array.
type Permissions []Permission

// ParsePermissions validates and de-duplicates raw permission names.
func ParsePermissions(raw []string) (Permissions, bool) {
	if len(raw) == 0 {
		return nil, false
	}
	seen := make(map[Permission]struct{}, len(raw))
	perms := make(Permissions, 0, len(raw))
	for _, r := range raw {
		p := Permission(r)
		if !p.Valid() {
			return nil, false
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		perms = append(perms, p)
	}
	return perms, true
}

// Has reports whether p is in the set.
func (ps Permissions) Has(p Permission) bool {
	for _, have := range ps {
		if have == p {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer.
func (ps Permissions) Value() (driver.Value, error) {
	if ps == nil {
		return "[]", nil
	}
	b, err := json.Marshal(ps)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (ps *Permissions) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ps = nil
		return nil
	case []byte:
		return json.Unmarshal(v, ps)
	case string:
		return json.Unmarshal([]byte(v), ps)
	default:
		return fmt.Errorf("unsupported permissions type %T", src)
	}
}

// Expiry is one of the supported key lifetimes.
type Expiry string

const (
	ExpiryHour  Expiry = "1H"
	ExpiryDay   Expiry = "1D"
	ExpiryMonth Expiry = "1M"
	ExpiryYear  Expiry = "1Y"
)

// Duration returns the key lifetime. Months are 30 days and years 365 days.
func (e Expiry) Duration() (time.Duration, bool) {
	switch e {
	case ExpiryHour:
		return time.Hour, true
	case ExpiryDay:
		return 24 * time.Hour, true
	case ExpiryMonth:
		return 30 * 24 * time.Hour, true
	case ExpiryYear:
		return 365 * 24 * time.Hour, true
	}
	return 0, false
}

// APIKeyDB represents an api_keys row joined with its owner's email.
type APIKeyDB struct {
	ID          uuid.UUID   `db:"id"`
	UserID      uuid.UUID   `db:"user_id"`
	OwnerEmail  string      `db:"owner_email"`
	KeyHash     string      `db:"key_hash"`
	Name        string      `db:"name"`
	Permissions Permissions `db:"permissions"`
	ExpiresAt   time.Time   `db:"expires_at"`
	Revoked     bool        `db:"revoked"`
	CreatedAt   time.Time   `db:"created_at"`
	UpdatedAt   time.Time   `db:"updated_at"`
}

// Usable reports whether the key may authenticate requests at now.
func (k *APIKeyDB) Usable(now time.Time) bool {
	return !k.Revoked && k.ExpiresAt.After(now)
}

// IssuedKey is returned once when a key is created.
type IssuedKey struct {
	Secret    string
	ExpiresAt time.Time
}
