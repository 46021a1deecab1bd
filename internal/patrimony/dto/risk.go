package dto

import "golang-family-office/internal/engine"

// AssetRiskResponse is the DTO for the risk metrics of one asset.
type AssetRiskResponse struct {
	AssetID   uint             `json:"asset_id"`
	AssetName string           `json:"asset_name"`
	AssetType string           `json:"asset_type"`
	Risk      engine.AssetRisk `json:"risk"`
}

// FamilyRiskResponse is the DTO for the family-level weighted risk score.
type FamilyRiskResponse struct {
	FamilyID uint              `json:"family_id"`
	Risk     engine.FamilyRisk `json:"risk"`
}
