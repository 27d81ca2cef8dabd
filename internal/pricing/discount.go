// Package pricing computes discounted prices.
package pricing

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ClampPercent limits a discount percentage to [0, 100].
func ClampPercent(percent int) int {
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	default:
		return percent
	}
}

// ComputeFinalPrice applies a percentage discount to initial.
//
// The percentage is clamped to [0, 100]. A non-positive initial price yields
// zero. The result is rounded to two decimal places, half away from zero,
// and is never negative.
func ComputeFinalPrice(initial decimal.Decimal, percent int) decimal.Decimal {
	if !initial.IsPositive() {
		return decimal.Zero
	}
	p := decimal.NewFromInt(int64(ClampPercent(percent)))
	discount := initial.Mul(p).Div(hundred)
	final := initial.Sub(discount).Round(2)
	if final.IsNegative() {
		return decimal.Zero
	}
	return final
}

// ComputeFinalPriceFloat is ComputeFinalPrice for float callers. The input is
// read as the shortest decimal that round-trips to the same float64, so 1.005
// is treated as the decimal 1.005 and rounds to 1.01.
func ComputeFinalPriceFloat(initial float64, percent int) float64 {
	return ComputeFinalPrice(decimal.NewFromFloat(initial), percent).InexactFloat64()
}
