// Package tax provides the progressive-bracket arithmetic shared by the
// inheritance engine and any other tax-style calculation.
package tax

import (
	"github.com/shopspring/decimal"
)

// Bracket is one slice of a progressive rate table. Max is nil for the
// unbounded top bracket.
type Bracket struct {
	Min  decimal.Decimal
	Max  *decimal.Decimal
	Rate decimal.Decimal
}

// NewBracket builds a bounded bracket from whole-KRW thresholds.
func NewBracket(min, max int64, rate float64) Bracket {
	m := decimal.NewFromInt(max)
	return Bracket{Min: decimal.NewFromInt(min), Max: &m, Rate: decimal.NewFromFloat(rate)}
}

// NewTopBracket builds the unbounded top bracket.
func NewTopBracket(min int64, rate float64) Bracket {
	return Bracket{Min: decimal.NewFromInt(min), Rate: decimal.NewFromFloat(rate)}
}

// CalculateProgressive applies each bracket's rate to the slice of amount
// falling within that bracket and returns the summed tax, floored to a whole
// currency unit at the end. No per-bracket rounding happens along the way,
// so thin brackets do not accumulate rounding drift.
func CalculateProgressive(amount decimal.Decimal, brackets []Bracket) decimal.Decimal {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	total := decimal.Zero
	for _, b := range brackets {
		if amount.LessThanOrEqual(b.Min) {
			break
		}
		upper := amount
		if b.Max != nil && upper.GreaterThan(*b.Max) {
			upper = *b.Max
		}
		slice := upper.Sub(b.Min)
		if slice.GreaterThan(decimal.Zero) {
			total = total.Add(slice.Mul(b.Rate))
		}
	}

	return total.Floor()
}

// InheritanceBrackets is the Korean inheritance/gift tax rate table.
func InheritanceBrackets() []Bracket {
	return []Bracket{
		NewBracket(0, 100_000_000, 0.10),
		NewBracket(100_000_000, 500_000_000, 0.20),
		NewBracket(500_000_000, 1_000_000_000, 0.30),
		NewBracket(1_000_000_000, 3_000_000_000, 0.40),
		NewTopBracket(3_000_000_000, 0.50),
	}
}
