package dto

import "golang-family-office/internal/engine"

// TopAsset is one entry of the dashboard's largest-holdings list.
type TopAsset struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	AssetType string  `json:"asset_type"`
	Value     float64 `json:"value"`
}

// DashboardResponse aggregates the family overview shown on the dashboard.
type DashboardResponse struct {
	FamilyID     uint                     `json:"family_id"`
	TotalValue   float64                  `json:"total_value"`
	AssetCount   int                      `json:"asset_count"`
	Distribution []engine.ClassAllocation `json:"distribution"`
	TopAssets    []TopAsset               `json:"top_assets"`
	RecentAlerts []AlertResponse          `json:"recent_alerts"`
	Risk         engine.FamilyRisk        `json:"risk"`
}
