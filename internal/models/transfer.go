package models

// TransferRequest represents the JSON body for a wallet transfer
// swagger:model TransferRequest
type TransferRequest struct {
	// Amount in minor units
	// required: true
	// example: 150000
	Amount int64 `json:"amount" validate:"required,gt=0"`

	// Recipient wallet number
	// required: true
	// example: 4829301746523
	WalletNumber string `json:"wallet_number" validate:"required,len=13,numeric"`
}

// TransferResponse reports the outcome of a transfer.
// Business failures are reported with status "failed" and HTTP 200.
// swagger:model TransferResponse
type TransferResponse struct {
	// example: success
	Status string `json:"status"`

	// example: Transfer completed successfully
	Message string `json:"message"`

	// example: trf_0b5d3c2e1f4a6978
	Reference string `json:"reference,omitempty"`
}
