package entity

import (
	"time"

	"gorm.io/datatypes"
)

// Asset is one holding of a family. Quantities and values are never stored on
// it; they are derived from the transaction ledger on demand.
type Asset struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	AssetType string         `gorm:"not null" json:"asset_type"`
	Details   datatypes.JSON `json:"details,omitempty"`
	FamilyID  uint           `gorm:"not null;index" json:"family_id"`

	Transactions []Transaction `gorm:"constraint:OnDelete:CASCADE" json:"transactions,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}
