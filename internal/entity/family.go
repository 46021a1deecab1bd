package entity

import "time"

// Family groups the assets and cash balance of one household.
type Family struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	CashBalance float64 `gorm:"not null;default:0" json:"cash_balance"`

	Assets []Asset `gorm:"constraint:OnDelete:CASCADE" json:"assets,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Family) TableName() string {
	return "families"
}
