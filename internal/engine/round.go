package engine

import "github.com/shopspring/decimal"

// Round2 rounds a monetary amount to 2 decimal places.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Round6 rounds a quantity to 6 decimal places.
func Round6(v float64) float64 {
	return decimal.NewFromFloat(v).Round(6).InexactFloat64()
}
