package domain

// Bound declares the defensive range for a tunable rate. Clamp ranges are
// declared once here so they can be tested once, instead of scattering
// min/max calls at every use site.
type Bound struct {
	Min float64
	Max float64
}

// Clamp forces v into the bound's range.
func (b Bound) Clamp(v float64) float64 {
	if v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}
	return v
}

// Defensive ranges for the advanced investment settings. Percent-valued
// fields bound the percentage, not the fraction.
var (
	BoundRevenueGrowth  = Bound{Min: -50, Max: 100}
	BoundCostInflation  = Bound{Min: 0, Max: 20}
	BoundWorkingCapital = Bound{Min: 0, Max: 50}
	BoundDepreciation   = Bound{Min: 0, Max: 100}
	BoundInflation      = Bound{Min: -10, Max: 30}
	BoundDebtRatio      = Bound{Min: 0, Max: 90}
	BoundAdditionalLoan = Bound{Min: 0, Max: 30}
	BoundOperatingCost  = Bound{Min: 0, Max: 100}
	BoundCorporateTax   = Bound{Min: 0, Max: 50}
	BoundDiscountRate   = Bound{Min: 0, Max: 50}
)

// ApplyBounds returns a copy of the settings with every rate clamped to its
// declared range.
func (a AdvancedSettings) ApplyBounds() AdvancedSettings {
	a.RevenueGrowthRate = BoundRevenueGrowth.Clamp(a.RevenueGrowthRate)
	a.CostInflationRate = BoundCostInflation.Clamp(a.CostInflationRate)
	a.WorkingCapitalRatio = BoundWorkingCapital.Clamp(a.WorkingCapitalRatio)
	a.DepreciationRate = BoundDepreciation.Clamp(a.DepreciationRate)
	a.InflationRate = BoundInflation.Clamp(a.InflationRate)
	a.DebtRatio = BoundDebtRatio.Clamp(a.DebtRatio)
	a.AdditionalLoanRate = BoundAdditionalLoan.Clamp(a.AdditionalLoanRate)
	if a.ResidualValue < 0 {
		a.ResidualValue = 0
	}
	return a
}
