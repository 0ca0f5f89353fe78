package models

// BalanceResponse represents a successful response with the wallet balance
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Balance in minor units
	// example: 500000
	Balance int64 `json:"balance"`

	// Public wallet number
	// example: 4829301746523
	WalletNumber string `json:"wallet_number"`
}

// TransactionItem is one entry of the transaction history
// swagger:model TransactionItem
type TransactionItem struct {
	// example: dep_6f1c2a9e8b7d4c3a
	Reference string `json:"reference"`

	// example: deposit
	Type TransactionType `json:"type"`

	// example: 500000
	Amount int64 `json:"amount"`

	// example: success
	Status TransactionStatus `json:"status"`

	// example: 2025-10-01T12:00:00Z
	CreatedAt string `json:"created_at"`
}

// TransactionsResponse lists the caller's transactions, newest first
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []TransactionItem `json:"transactions"`
}
