package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestComputeFinalPrice(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		percent int
		want    string
	}{
		{"standard ten percent", "1000", 10, "900"},
		{"zero discount", "500", 0, "500"},
		{"full discount", "750", 100, "0"},
		{"fractional result", "999", 33, "669.33"},
		{"zero initial price", "0", 50, "0"},
		{"discount above 100 is clamped", "400", 150, "0"},
		{"negative discount is clamped", "500", -5, "500"},
		{"negative initial price", "-20", 10, "0"},
		{"half rounds away from zero", "0.25", 10, "0.23"},
		{"cents survive", "19.99", 15, "16.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeFinalPrice(decimal.RequireFromString(tt.initial), tt.percent)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s want %s", got, tt.want)
		})
	}
}

func TestComputeFinalPriceFloat(t *testing.T) {
	assert.Equal(t, 900.0, ComputeFinalPriceFloat(1000, 10))
	assert.Equal(t, 669.33, ComputeFinalPriceFloat(999, 33))
	assert.Equal(t, 0.0, ComputeFinalPriceFloat(400, 150))
	assert.GreaterOrEqual(t, ComputeFinalPriceFloat(500, -5), 500.0)
	assert.Equal(t, 1.01, ComputeFinalPriceFloat(1.005, 0))
	assert.Equal(t, 2.68, ComputeFinalPriceFloat(2.675, 0))
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0, ClampPercent(-1))
	assert.Equal(t, 42, ClampPercent(42))
	assert.Equal(t, 100, ClampPercent(101))
}

// priceGen draws positive prices with up to two decimal places.
func priceGen() *rapid.Generator[decimal.Decimal] {
	return rapid.Custom(func(t *rapid.T) decimal.Decimal {
		cents := rapid.Int64Range(1, 100_000_000).Draw(t, "cents")
		return decimal.New(cents, -2)
	})
}

func TestComputeFinalPrice_Properties(t *testing.T) {
	t.Run("non-increasing in discount", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			p := priceGen().Draw(t, "price")
			d1 := rapid.IntRange(-50, 150).Draw(t, "d1")
			d2 := rapid.IntRange(d1, 200).Draw(t, "d2")
			if ComputeFinalPrice(p, d2).GreaterThan(ComputeFinalPrice(p, d1)) {
				t.Fatalf("price rose from %d%% to %d%% for %s", d1, d2, p)
			}
		})
	})

	t.Run("zero discount keeps price", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			p := priceGen().Draw(t, "price")
			if got := ComputeFinalPrice(p, 0); !got.Equal(p.Round(2)) {
				t.Fatalf("got %s want %s", got, p)
			}
		})
	})

	t.Run("full discount is free", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			p := priceGen().Draw(t, "price")
			if got := ComputeFinalPrice(p, 100); !got.IsZero() {
				t.Fatalf("got %s want 0", got)
			}
		})
	})

	t.Run("never negative", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			cents := rapid.Int64Range(-100_000, 100_000_000).Draw(t, "cents")
			d := rapid.IntRange(-1000, 1000).Draw(t, "discount")
			if got := ComputeFinalPrice(decimal.New(cents, -2), d); got.IsNegative() {
				t.Fatalf("negative price %s", got)
			}
		})
	})

	t.Run("zero price stays zero", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			d := rapid.Int().Draw(t, "discount")
			if got := ComputeFinalPrice(decimal.Zero, d); !got.IsZero() {
				t.Fatalf("got %s want 0", got)
			}
		})
	})
}
