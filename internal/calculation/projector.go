package calculation

import (
	"math"

	"github.com/taxlab/bizcalc/internal/domain"
)

// costInflationDampening scales the compounded cost-inflation effect down to
// 70% of its raw value. Long-horizon projections were over-punished by a
// parameter users rarely calibrate with confidence, so only part of the
// nominal effect is applied. Keep in sync with the product owner before
// changing.
const costInflationDampening = 0.7

// depreciationScheduleYears is the fixed straight-line depreciation window.
const depreciationScheduleYears = 10

// Projector turns a validated investment input into a year-by-year cash-flow
// series. It is a pure function over its inputs except for warning logs on
// recovered numerical faults.
type Projector struct {
	Logger Logger
}

// NewProjector creates a projector with the given logger, defaulting to a
// no-op logger.
func NewProjector(logger Logger) *Projector {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Projector{Logger: logger}
}

// Project produces the yearly cash flows for the analysis horizon. The policy
// loan schedule may be nil when no policy loan exists.
//
// Any non-finite intermediate for a year is replaced with zero and logged;
// the projection continues for subsequent years rather than aborting.
func (p *Projector) Project(input *domain.InvestmentAnalysisInput, schedule *domain.LoanSchedule) []domain.YearlyCashFlow {
	adv := input.AdvancedOrDefault().ApplyBounds()

	growth := adv.RevenueGrowthRate / 100
	costInflation := adv.CostInflationRate / 100
	costRate := domain.BoundOperatingCost.Clamp(input.OperatingCostRate) / 100
	taxRate := domain.BoundCorporateTax.Clamp(input.CorporateTaxRate) / 100
	wcRatio := adv.WorkingCapitalRatio / 100
	discount := domain.BoundDiscountRate.Clamp(input.DiscountRate) / 100
	inflation := adv.InflationRate / 100

	// Straight-line baseline over ten years; the configured depreciation rate
	// acts as a multiplier on that baseline, not as an independent rate.
	straightLine := (input.InitialInvestment - adv.ResidualValue) / depreciationScheduleYears
	if straightLine < 0 {
		straightLine = 0
	}
	depPerYear := straightLine * adv.DepreciationRate / 10

	// Supplementary debt outside the policy loan: interest-only, sized off
	// the initial investment, independent of the amortization schedule.
	additionalInterest := input.InitialInvestment * (adv.DebtRatio / 100) * (adv.AdditionalLoanRate / 100)

	flows := make([]domain.YearlyCashFlow, input.AnalysisYears)
	// The cumulative series starts in the hole by the net outlay, so the
	// first non-negative year is the year the investor is made whole.
	cumulative := -input.ActualInvestment()
	prevWorkingCapital := 0.0

	for year := 0; year < input.AnalysisYears; year++ {
		revenue := input.RevenueForYear(year) * math.Pow(1+growth, float64(year))

		inflationEffect := math.Pow(1+costInflation, float64(year)) - 1
		operatingCost := revenue * costRate * (1 + inflationEffect*costInflationDampening)

		depreciation := 0.0
		if year < depreciationScheduleYears {
			depreciation = depPerYear
		}

		workingCapital := revenue * wcRatio
		wcChange := workingCapital - prevWorkingCapital

		ebit := revenue - operatingCost - depreciation
		corporateTax := math.Max(0, ebit*taxRate)
		netIncome := ebit - corporateTax

		loanPrincipal, loanInterest := schedule.ServiceForYear(year)

		netCashFlow := netIncome + depreciation - loanPrincipal - loanInterest - additionalInterest - wcChange
		if year == input.AnalysisYears-1 {
			// Terminal recovery: residual value and the working-capital
			// balance come back on the final year.
			netCashFlow += adv.ResidualValue + workingCapital
		}

		presentValue := netCashFlow / math.Pow(1+discount+inflation, float64(year+1))

		if !finite(revenue, operatingCost, ebit, corporateTax, netIncome, netCashFlow, presentValue) {
			p.Logger.Warnf("non-finite cash flow in year %d; substituting zero", year+1)
			flows[year] = domain.YearlyCashFlow{Year: year + 1, CumulativeCashFlow: cumulative}
			if finite(workingCapital) {
				prevWorkingCapital = workingCapital
			}
			continue
		}

		cumulative += netCashFlow
		flows[year] = domain.YearlyCashFlow{
			Year:                 year + 1,
			Revenue:              revenue,
			OperatingCost:        operatingCost,
			EBIT:                 ebit,
			Tax:                  corporateTax,
			NetIncome:            netIncome,
			Depreciation:         depreciation,
			LoanPrincipal:        loanPrincipal,
			LoanInterest:         loanInterest,
			AdditionalInterest:   additionalInterest,
			WorkingCapitalChange: wcChange,
			NetCashFlow:          netCashFlow,
			CumulativeCashFlow:   cumulative,
			PresentValue:         presentValue,
		}

		prevWorkingCapital = workingCapital
	}

	return flows
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
