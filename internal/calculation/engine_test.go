package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxlab/bizcalc/internal/domain"
)

func profitableInput() *domain.InvestmentAnalysisInput {
	return &domain.InvestmentAnalysisInput{
		InitialInvestment: 500_000_000,
		PolicyLoan: &domain.PolicyLoan{
			Amount:     100_000_000,
			Rate:       3.0,
			TermYears:  5,
			GraceYears: 1,
		},
		AnnualRevenue:     []float64{400_000_000},
		OperatingCostRate: 60,
		CorporateTaxRate:  20,
		DiscountRate:      8,
		AnalysisYears:     5,
	}
}

func TestAnalyze_FullRun(t *testing.T) {
	engine := NewInvestmentEngine(nil)

	result, err := engine.Analyze(profitableInput())
	require.NoError(t, err)

	assert.Len(t, result.CashFlows, 5)
	assert.Len(t, result.DSCR, 5)
	assert.Greater(t, result.ROI, 0.0)
	assert.NotEqual(t, domain.PaybackNotRecovered, result.PaybackPeriod)

	// Loan service is present, so DSCR must be populated in every loan year.
	for i, d := range result.DSCR {
		assert.Greater(t, d, 0.0, "year %d", i+1)
	}
}

func TestAnalyze_PaybackCountsOutlayRecovery(t *testing.T) {
	engine := NewInvestmentEngine(nil)

	result, err := engine.Analyze(profitableInput())
	require.NoError(t, err)

	// Net outlay 400M against yearly flows around 100-125M: the cumulative
	// balance turns positive in year 4, not in the first profitable year.
	assert.Equal(t, 4, result.PaybackPeriod)
	assert.Less(t, result.CashFlows[0].CumulativeCashFlow, 0.0)
	assert.Greater(t, result.CashFlows[3].CumulativeCashFlow, 0.0)
}

func TestAnalyze_RejectsZeroInvestment(t *testing.T) {
	engine := NewInvestmentEngine(nil)
	input := profitableInput()
	input.InitialInvestment = 0

	result, err := engine.Analyze(input)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Nil(t, result, "Validation failures must not return a partial result")
}

func TestAnalyze_RejectsEmptyRevenue(t *testing.T) {
	engine := NewInvestmentEngine(nil)
	input := profitableInput()
	input.AnnualRevenue = nil

	_, err := engine.Analyze(input)
	assert.Error(t, err)
}

func TestAnalyze_RejectsFullyOffsetInvestment(t *testing.T) {
	engine := NewInvestmentEngine(nil)
	input := profitableInput()
	input.PolicyLoan.Amount = input.InitialInvestment

	_, err := engine.Analyze(input)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "policy loan")
}

func TestAnalyze_RejectsImpossibleLoanWindow(t *testing.T) {
	engine := NewInvestmentEngine(nil)
	input := profitableInput()
	zero := 0
	input.PolicyLoan.RepaymentYears = &zero

	_, err := engine.Analyze(input)
	assert.Error(t, err)
}

func TestAnalyze_MetricSeriesUsesActualInvestment(t *testing.T) {
	engine := NewInvestmentEngine(nil)
	input := profitableInput()

	result, err := engine.Analyze(input)
	require.NoError(t, err)

	// Reproduce the NPV from the published cash flows and the net outlay.
	series := []float64{-input.ActualInvestment()}
	for _, f := range result.CashFlows {
		series = append(series, f.NetCashFlow)
	}
	want := engine.Metrics.NPV(series, input.DiscountRate/100)
	assert.InDelta(t, want, result.NPV, 1e-6)
}

func TestAnalyze_NoLoanMeansZeroDSCR(t *testing.T) {
	engine := NewInvestmentEngine(nil)
	input := profitableInput()
	input.PolicyLoan = nil

	result, err := engine.Analyze(input)
	require.NoError(t, err)

	for _, d := range result.DSCR {
		assert.Equal(t, 0.0, d)
	}
}

func TestSetLogger_PropagatesToComponents(t *testing.T) {
	engine := NewInvestmentEngine(nil)

	engine.SetLogger(nil)

	assert.NotNil(t, engine.Logger)
	assert.NotNil(t, engine.Projector.Logger)
	assert.NotNil(t, engine.Metrics.Logger)
}
