package dto

import (
	"time"

	"golang-family-office/internal/engine"
)

// CreateFamilyRequest is the DTO for creating a new family.
type CreateFamilyRequest struct {
	Name        string  `json:"name"`
	CashBalance float64 `json:"cash_balance"`
}

// CashOperationRequest is the DTO for cash deposits and withdrawals.
type CashOperationRequest struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// FamilyResponse is the DTO for family details.
type FamilyResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	CashBalance float64   `json:"cash_balance"`
	CreatedAt   time.Time `json:"created_at"`
}

// FamilyBalanceResponse carries the aggregated patrimony figures of a family.
type FamilyBalanceResponse struct {
	FamilyID        uint                     `json:"family_id"`
	CashBalance     float64                  `json:"cash_balance"`
	TotalInvested   float64                  `json:"total_invested"`
	TotalPatrimony  float64                  `json:"total_patrimony"`
	PercentInvested float64                  `json:"percent_invested"`
	AssetAllocation []engine.ClassAllocation `json:"asset_allocation"`
}
