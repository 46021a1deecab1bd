package engine

import "sort"

// ClassAllocation is the total value held in one asset class.
type ClassAllocation struct {
	AssetType string  `json:"asset_type"`
	Value     float64 `json:"value"`
}

// PortfolioSummary rolls a family's positions and cash balance into
// patrimony-level figures.
type PortfolioSummary struct {
	TotalInvested   float64           `json:"total_invested"`
	CashBalance     float64           `json:"cash_balance"`
	TotalPatrimony  float64           `json:"total_patrimony"`
	PercentInvested float64           `json:"percent_invested"`
	Allocation      []ClassAllocation `json:"asset_allocation"`
}

// Aggregate combines the family's holdings and cash balance. The allocation is
// sorted by asset type so the output is deterministic.
func Aggregate(holdings []Holding, cashBalance float64) PortfolioSummary {
	var invested float64
	byType := make(map[string]float64)
	for _, h := range holdings {
		invested += h.Position.CurrentValue
		byType[h.Asset.Type] += h.Position.CurrentValue
	}

	allocation := make([]ClassAllocation, 0, len(byType))
	for assetType, value := range byType {
		allocation = append(allocation, ClassAllocation{AssetType: assetType, Value: Round2(value)})
	}
	sort.Slice(allocation, func(i, j int) bool { return allocation[i].AssetType < allocation[j].AssetType })

	summary := PortfolioSummary{
		TotalInvested: Round2(invested),
		CashBalance:   Round2(cashBalance),
		Allocation:    allocation,
	}
	summary.TotalPatrimony = Round2(summary.TotalInvested + summary.CashBalance)
	if summary.TotalPatrimony > 0 {
		summary.PercentInvested = Round2(summary.TotalInvested / summary.TotalPatrimony * 100)
	}

	return summary
}
