package services

import "github.com/shopspring/decimal"

// Round2 rounds x to two fractional digits, half away from zero.
// Rounding happens on the shortest decimal form of x, so 2.675 rounds to 2.68.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}
