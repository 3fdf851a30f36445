package tax

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCalculateProgressive_ZeroAmount(t *testing.T) {
	tax := CalculateProgressive(decimal.Zero, InheritanceBrackets())

	assert.True(t, tax.IsZero(), "Tax on zero amount should be zero")
}

func TestCalculateProgressive_NegativeAmount(t *testing.T) {
	tax := CalculateProgressive(decimal.NewFromInt(-1000), InheritanceBrackets())

	assert.True(t, tax.IsZero(), "Tax on negative amount should be zero")
}

func TestCalculateProgressive_MarginalIntegration(t *testing.T) {
	// 600M: 100M at 10% + 400M at 20% + 100M at 30%
	tax := CalculateProgressive(decimal.NewFromInt(600_000_000), InheritanceBrackets())

	assert.True(t, tax.Equal(decimal.NewFromInt(120_000_000)),
		"Should integrate marginal rates, got %s", tax)
}

func TestCalculateProgressive_FirstBracketOnly(t *testing.T) {
	tax := CalculateProgressive(decimal.NewFromInt(50_000_000), InheritanceBrackets())

	assert.True(t, tax.Equal(decimal.NewFromInt(5_000_000)),
		"50M entirely in the 10%% bracket, got %s", tax)
}

func TestCalculateProgressive_AboveTopBracket(t *testing.T) {
	// 5B: 10M + 80M + 150M + 800M + 1B = 2.04B
	tax := CalculateProgressive(decimal.NewFromInt(5_000_000_000), InheritanceBrackets())

	assert.True(t, tax.Equal(decimal.NewFromInt(2_040_000_000)),
		"Remainder above the top threshold taxed at the top rate, got %s", tax)
}

func TestCalculateProgressive_Monotonic(t *testing.T) {
	brackets := InheritanceBrackets()

	prev := decimal.Zero
	for _, amount := range []int64{0, 1_000_000, 100_000_000, 100_000_001,
		500_000_000, 999_999_999, 3_000_000_000, 10_000_000_000} {
		tax := CalculateProgressive(decimal.NewFromInt(amount), brackets)

		assert.True(t, tax.GreaterThanOrEqual(prev),
			"Tax should be non-decreasing in amount; amount=%d tax=%s prev=%s", amount, tax, prev)
		prev = tax
	}
}

func TestCalculateProgressive_FlooredToWholeUnit(t *testing.T) {
	tax := CalculateProgressive(decimal.NewFromInt(15), InheritanceBrackets())

	// 15 * 0.1 = 1.5, floored to 1.
	assert.True(t, tax.Equal(decimal.NewFromInt(1)),
		"Tax should be floored to a whole currency unit, got %s", tax)
}
