package entity

import "time"

// Transaction is one immutable buy/sell record in an asset's ledger.
// TotalValue is computed once at creation from quantity and unit price.
type Transaction struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	AssetID         uint      `gorm:"not null;index" json:"asset_id"`
	TransactionType string    `gorm:"not null;size:10" json:"transaction_type"`
	Quantity        float64   `gorm:"not null" json:"quantity"`
	UnitPrice       float64   `gorm:"not null" json:"unit_price"`
	TotalValue      float64   `gorm:"not null" json:"total_value"`
	TransactionDate time.Time `gorm:"not null;index" json:"transaction_date"`
	Description     string    `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}
