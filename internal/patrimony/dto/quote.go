package dto

import "time"

// Quote is one market price fetched from the quote provider.
type Quote struct {
	Symbol   string    `json:"symbol"`
	Price    float64   `json:"price"`
	Currency string    `json:"currency"`
	Source   string    `json:"source"`
	QuotedAt time.Time `json:"quoted_at"`
}
