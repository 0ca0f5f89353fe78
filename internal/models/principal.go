package models

import "github.com/google/uuid"

// AuthMode tells how a principal authenticated.
type AuthMode string

const (
	AuthModeFull   AuthMode = "full"   // Bearer token, every operation allowed
	AuthModeScoped AuthMode = "scoped" // API key, limited to its permissions
)

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID      uuid.UUID
	Email       string
	Mode        AuthMode
	Permissions Permissions
}

// Allows reports whether the principal may use permission p.
func (p *Principal) Allows(perm Permission) bool {
	return p.Mode == AuthModeFull || p.Permissions.Has(perm)
}
