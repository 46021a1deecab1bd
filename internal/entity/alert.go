package entity

import "time"

// Alert is a threshold-derived warning persisted for a family. Concentration
// and liquidity alerts are regenerated wholesale on every trigger.
type Alert struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	FamilyID uint   `gorm:"not null;index" json:"family_id"`
	AssetID  *uint  `json:"asset_id,omitempty"`
	Kind     string `gorm:"not null;size:50" json:"kind"`
	Message  string `gorm:"not null;size:255" json:"message"`
	Severity string `gorm:"not null;size:20;default:info" json:"severity"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Alert) TableName() string {
	return "alerts"
}
