package models

// CreateKeyRequest represents the JSON body for creating an API key
// swagger:model CreateKeyRequest
type CreateKeyRequest struct {
	// required: true
	// example: reporting
	Name string `json:"name" validate:"required,max=100"`

	// required: true
	// example: ["read","deposit"]
	Permissions []string `json:"permissions" validate:"required,min=1,dive,oneof=deposit transfer read"`

	// required: true
	// example: 1M
	Expiry string `json:"expiry" validate:"required,oneof=1H 1D 1M 1Y"`
}

// RolloverKeyRequest represents the JSON body for rolling over an expired key
// swagger:model RolloverKeyRequest
type RolloverKeyRequest struct {
	// The expired key secret
	// required: true
	// example: sk_9c1f...
	ExpiredKeyID string `json:"expired_key_id" validate:"required"`

	// required: true
	// example: 1Y
	Expiry string `json:"expiry" validate:"required,oneof=1H 1D 1M 1Y"`
}

// RevokeKeyRequest represents the JSON body for revoking a key
// swagger:model RevokeKeyRequest
type RevokeKeyRequest struct {
	// required: true
	// example: sk_9c1f...
	APIKey string `json:"api_key" validate:"required"`
}

// KeyResponse returns a freshly issued secret. It is shown exactly once.
// swagger:model KeyResponse
type KeyResponse struct {
	// example: sk_9c1f...
	APIKey string `json:"api_key"`

	// example: 2025-11-01T12:00:00Z
	ExpiresAt string `json:"expires_at"`
}

// RevokeKeyResponse confirms a revocation
// swagger:model RevokeKeyResponse
type RevokeKeyResponse struct {
	// example: API key revoked successfully
	Message string `json:"message"`

	// example: reporting
	RevokedKeyName string `json:"revoked_key_name"`
}
