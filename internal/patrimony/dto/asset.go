package dto

import (
	"encoding/json"
	"time"

	"golang-family-office/internal/engine"
)

// CreateAssetRequest is the DTO for registering a new asset.
type CreateAssetRequest struct {
	Name      string          `json:"name"`
	AssetType string          `json:"asset_type"`
	FamilyID  uint            `json:"family_id"`
	Details   json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}

// UpdateAssetRequest is the DTO for updating an existing asset.
type UpdateAssetRequest struct {
	Name      string          `json:"name"`
	AssetType string          `json:"asset_type"`
	Details   json.RawMessage `json:"details,omitempty" swaggertype:"object"`
}

// AssetResponse is the DTO for asset details with the derived position.
type AssetResponse struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	AssetType string           `json:"asset_type"`
	FamilyID  uint             `json:"family_id"`
	Details   json.RawMessage  `json:"details,omitempty" swaggertype:"object"`
	Position  *engine.Position `json:"position,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
