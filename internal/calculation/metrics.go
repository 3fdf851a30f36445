package calculation

import (
	"math"

	"github.com/taxlab/bizcalc/internal/domain"
)

// IRR solver settings. The rate is clamped each iteration to keep
// Newton-Raphson from walking off into nonsense territory.
const (
	irrInitialGuess  = 0.10
	irrMaxIterations = 100
	irrTolerance     = 1e-5
	irrMinRate       = -0.99
	irrMaxRate       = 10.0
)

// MetricsCalculator derives the summary metrics from a projected cash-flow
// series. Non-finite results are substituted with zero and logged so that no
// NaN ever reaches a caller.
type MetricsCalculator struct {
	Logger Logger
}

// NewMetricsCalculator creates a metrics calculator with the given logger,
// defaulting to a no-op logger.
func NewMetricsCalculator(logger Logger) *MetricsCalculator {
	if logger == nil {
		logger = NopLogger{}
	}
	return &MetricsCalculator{Logger: logger}
}

// NPV discounts the series at the given fractional rate. The year-0 flow is
// undiscounted.
func (mc *MetricsCalculator) NPV(cashFlows []float64, rate float64) float64 {
	npv := 0.0
	for i, cf := range cashFlows {
		npv += cf / math.Pow(1+rate, float64(i))
	}
	return mc.guard("NPV", npv)
}

// IRR finds the internal rate of return by Newton-Raphson from a 10% seed.
// A series without at least one sign change has no economically meaningful
// root, so IRR is defined as 0 there rather than as an error.
func (mc *MetricsCalculator) IRR(cashFlows []float64) float64 {
	if !hasSignChange(cashFlows) {
		return 0
	}

	rate := irrInitialGuess
	for i := 0; i < irrMaxIterations; i++ {
		npv := 0.0
		derivative := 0.0
		for t, cf := range cashFlows {
			ft := float64(t)
			npv += cf / math.Pow(1+rate, ft)
			derivative -= ft * cf / math.Pow(1+rate, ft+1)
		}

		if math.Abs(derivative) < irrTolerance {
			break
		}

		next := rate - npv/derivative
		next = math.Max(irrMinRate, math.Min(irrMaxRate, next))
		if math.Abs(next-rate) < irrTolerance {
			rate = next
			break
		}
		rate = next
	}

	return mc.guard("IRR", rate)
}

// PaybackPeriod returns the first 1-based year whose cumulative cash flow is
// non-negative, or PaybackNotRecovered when the investment never recovers
// within the horizon.
func (mc *MetricsCalculator) PaybackPeriod(flows []domain.YearlyCashFlow) int {
	for _, f := range flows {
		if f.CumulativeCashFlow >= 0 {
			return f.Year
		}
	}
	return domain.PaybackNotRecovered
}

// DSCR computes per-year debt-service coverage: (EBIT + depreciation) over
// total debt service. A year with no debt service reports exactly 0, never
// infinity; "no debt" must not read as "excellent coverage".
func (mc *MetricsCalculator) DSCR(flows []domain.YearlyCashFlow) []float64 {
	out := make([]float64, len(flows))
	for i, f := range flows {
		service := f.LoanPrincipal + f.LoanInterest
		if service == 0 {
			continue
		}
		out[i] = mc.guard("DSCR", (f.EBIT+f.Depreciation)/service)
	}
	return out
}

// ROI is the sum of net cash flows over the actual initial investment, as a
// percentage.
func (mc *MetricsCalculator) ROI(flows []domain.YearlyCashFlow, actualInvestment float64) float64 {
	total := 0.0
	for _, f := range flows {
		total += f.NetCashFlow
	}
	return mc.guard("ROI", total/actualInvestment*100)
}

// ProfitabilityIndex is (sum of present values + investment) / investment.
func (mc *MetricsCalculator) ProfitabilityIndex(flows []domain.YearlyCashFlow, actualInvestment float64) float64 {
	pv := 0.0
	for _, f := range flows {
		pv += f.PresentValue
	}
	return mc.guard("profitability index", (pv+actualInvestment)/actualInvestment)
}

func (mc *MetricsCalculator) guard(name string, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		mc.Logger.Warnf("non-finite %s; substituting zero", name)
		return 0
	}
	return v
}

func hasSignChange(cashFlows []float64) bool {
	hasPositive := false
	hasNegative := false
	for _, cf := range cashFlows {
		if cf > 0 {
			hasPositive = true
		}
		if cf < 0 {
			hasNegative = true
		}
	}
	return hasPositive && hasNegative
}
