package models

// DepositRequest represents the JSON body for starting a deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount in minor units
	// required: true
	// example: 500000
	Amount int64 `json:"amount" validate:"required,gt=0"`

	// Optional idempotency reference
	// example: order-2025-0001
	Reference string `json:"reference,omitempty" validate:"omitempty,max=100,printascii"`
}

// DepositResponse represents a created checkout session
// swagger:model DepositResponse
type DepositResponse struct {
	// example: dep_6f1c2a9e8b7d4c3a
	Reference string `json:"reference"`

	// example: https://checkout.paystack.com/abc123
	AuthorizationURL string `json:"authorization_url"`
}

// DepositStatusResponse represents the state of a deposit
// swagger:model DepositStatusResponse
type DepositStatusResponse struct {
	// example: dep_6f1c2a9e8b7d4c3a
	Reference string `json:"reference"`

	// example: success
	Status TransactionStatus `json:"status"`

	// example: 500000
	Amount int64 `json:"amount"`
}

// WebhookEvent is the Paystack event envelope
// swagger:model WebhookEvent
type WebhookEvent struct {
	Event string           `json:"event"`
	Data  WebhookEventData `json:"data"`
}

// WebhookEventData carries the charge details of a webhook event
type WebhookEventData struct {
	Reference string  `json:"reference"`
	Status    string  `json:"status"`
	Amount    int64   `json:"amount"`
	PaidAt    *string `json:"paid_at"`
}

// WebhookAck acknowledges a webhook delivery
// swagger:model WebhookAck
type WebhookAck struct {
	Status bool `json:"status"`
}

// ChargeResult converts the event into the provider-neutral charge view.
func (e WebhookEvent) ChargeResult() ChargeResult {
	return ChargeResult{
		Event:     e.Event,
		Reference: e.Data.Reference,
		Status:    e.Data.Status,
		Amount:    e.Data.Amount,
		PaidAt:    ParsePaidAt(e.Data.PaidAt),
	}
}
