// Package apperrors defines the error taxonomy shared by every layer.
// Each sentinel carries a stable machine readable code, a message that is
// safe to show to clients and the HTTP status it maps to.
package apperrors

import (
	"errors"
	"net/http"
)

// Error is a domain error that can be reported to API clients.
type Error struct {
	Code    string // Stable machine readable code
	Message string // Human readable message
	Status  int    // HTTP status code
}

// New creates a new domain error.
func New(status int, code, message string) *Error {
	return &Error{Code: code, Message: message, Status: status}
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// Validation returns an invalid_input error with a custom message.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, "invalid_input", message)
}

// Authentication and authorization
var (
	ErrUnauthenticated = New(http.StatusUnauthorized, "unauthorized", "Missing, invalid or expired credentials")
	ErrForbidden       = New(http.StatusForbidden, "forbidden", "Not allowed to perform this operation")
	ErrBearerRequired  = New(http.StatusForbidden, "forbidden", "This operation requires a bearer token")
	ErrRateLimited     = New(http.StatusTooManyRequests, "rate_limited", "Too many requests")
)

// Sign-in
var (
	ErrAccessDenied     = New(http.StatusBadRequest, "access_denied", "User denied access")
	ErrBadRequest       = New(http.StatusBadRequest, "bad_request", "Malformed sign-in callback")
	ErrInvalidState     = New(http.StatusBadRequest, "bad_request", "Unknown or expired OAuth state")
	ErrInvalidGrant     = New(http.StatusUnauthorized, "invalid_grant", "Authorization code is invalid or expired")
	ErrIdentityProvider = New(http.StatusInternalServerError, "provider_error", "Identity provider request failed")
)

// Payments
var (
	ErrPaymentInitiation = New(http.StatusPaymentRequired, "payment_initiation_failed", "Payment initiation failed")
	ErrPaymentProvider   = New(http.StatusBadGateway, "provider_error", "Payment provider request failed")
	ErrMissingSignature  = New(http.StatusBadRequest, "missing_signature", "Missing webhook signature")
	ErrInvalidSignature  = New(http.StatusBadRequest, "invalid_signature", "Invalid webhook signature")
)

// Wallet ledger
var (
	ErrInvalidAmount         = Validation("Amount must be a positive integer in minor units")
	ErrTransactionNotFound   = New(http.StatusNotFound, "not_found", "Transaction not found")
	ErrNotTransactionOwner   = New(http.StatusForbidden, "forbidden", "Transaction belongs to another user")
	ErrReferenceConflict     = New(http.StatusConflict, "reference_conflict", "Reference is already in use")
	ErrInsufficientFunds     = New(http.StatusConflict, "insufficient_funds", "Insufficient funds")
	ErrSelfTransferDenied    = New(http.StatusConflict, "self_transfer_denied", "Cannot transfer to your own wallet")
	ErrRecipientNotFound     = New(http.StatusNotFound, "recipient_not_found", "Recipient wallet not found")
	ErrWalletNumberExhausted = New(http.StatusInternalServerError, "internal_error", "Could not allocate a wallet number")
)

// API keys
var (
	ErrInvalidPermission = Validation("Permissions must be a non-empty subset of deposit, transfer, read")
	ErrInvalidExpiry     = Validation("Expiry must be one of 1H, 1D, 1M, 1Y")
	ErrTooManyActiveKeys = New(http.StatusForbidden, "limit_exceeded", "Maximum of 5 active API keys reached")
	ErrKeyNotFound       = New(http.StatusNotFound, "key_not_found", "API key not found")
	ErrKeyNotExpired     = New(http.StatusBadRequest, "key_not_expired", "API key has not expired yet")
)

// ErrInternal is reported for every error that is not a domain error.
var ErrInternal = New(http.StatusInternalServerError, "internal_error", "Internal server error")

// From resolves the domain error wrapped in err.
// Errors outside the taxonomy resolve to ErrInternal and ok is false.
func From(err error) (appErr *Error, ok bool) {
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return ErrInternal, false
}
