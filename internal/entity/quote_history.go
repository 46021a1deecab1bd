package entity

import "time"

// QuoteHistory stores one fetched market price for an asset.
type QuoteHistory struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	AssetID  uint      `gorm:"not null;index" json:"asset_id"`
	Price    float64   `gorm:"not null" json:"price"`
	Currency string    `gorm:"not null;size:10" json:"currency"`
	Source   string    `gorm:"size:50" json:"source"`
	QuotedAt time.Time `gorm:"not null;index" json:"quoted_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (QuoteHistory) TableName() string {
	return "quote_history"
}
