package models

import "time"

// PaymentCheckout is a hosted checkout session created by the payment provider.
type PaymentCheckout struct {
	Reference        string
	AuthorizationURL string
	AccessCode       string
}

// ChargeResult is the provider's authoritative view of a charge.
// It comes either from a webhook event or from a verification call.
type ChargeResult struct {
	Event     string // Webhook event name, empty for verification results
	Reference string
	Status    string // Raw provider status: success, failed, abandoned, ...
	Amount    int64
	PaidAt    *time.Time
}

// SettledStatus maps a provider charge status to a final transaction status.
// ok is false when the charge is still in flight.
func (c ChargeResult) SettledStatus() (status TransactionStatus, ok bool) {
	switch c.Status {
	case "success":
		return StatusSuccess, true
	case "failed", "reversed":
		return StatusFailed, true
	default:
		return StatusPending, false
	}
}

// ParsePaidAt parses a provider timestamp, returning nil when absent or malformed.
func ParsePaidAt(raw *string) *time.Time {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil
	}
	return &t
}
