package dto

import "time"

// AlertResponse is the DTO for a persisted alert.
type AlertResponse struct {
	ID        string    `json:"id"`
	FamilyID  uint      `json:"family_id"`
	AssetID   *uint     `json:"asset_id,omitempty"`
	Kind      string    `json:"kind"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

// TriggerAlertsResponse reports the outcome of an alert regeneration.
type TriggerAlertsResponse struct {
	FamilyID  uint            `json:"family_id"`
	Generated int             `json:"generated"`
	Alerts    []AlertResponse `json:"alerts"`
}
