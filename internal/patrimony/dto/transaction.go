package dto

import (
	"time"

	"golang-family-office/internal/engine"
)

// CreateTransactionRequest is the DTO for appending a buy/sell record to an
// asset's ledger.
type CreateTransactionRequest struct {
	AssetID         uint    `json:"asset_id"`
	TransactionType string  `json:"transaction_type"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	TransactionDate string  `json:"transaction_date"` // YYYY-MM-DD
	Description     string  `json:"description"`
}

// UpdateTransactionRequest is the DTO for correcting an existing record.
// The total value is recomputed from quantity and unit price.
type UpdateTransactionRequest struct {
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	TransactionDate string  `json:"transaction_date"` // YYYY-MM-DD
	Description     string  `json:"description"`
}

// TransactionResponse is the DTO for a single ledger record.
type TransactionResponse struct {
	ID              uint      `json:"id"`
	AssetID         uint      `json:"asset_id"`
	TransactionType string    `json:"transaction_type"`
	Quantity        float64   `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	TotalValue      float64   `json:"total_value"`
	TransactionDate time.Time `json:"transaction_date"`
	Description     string    `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// TransactionSummaryResponse pairs an asset's ledger with its derived
// position.
type TransactionSummaryResponse struct {
	AssetID      uint                  `json:"asset_id"`
	AssetName    string                `json:"asset_name"`
	Position     engine.Position       `json:"position"`
	Transactions []TransactionResponse `json:"transactions"`
}
