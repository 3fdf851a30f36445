package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBound_Clamp(t *testing.T) {
	b := Bound{Min: 0, Max: 50}

	assert.Equal(t, 0.0, b.Clamp(-10))
	assert.Equal(t, 25.0, b.Clamp(25))
	assert.Equal(t, 50.0, b.Clamp(120))
}

func TestApplyBounds_ClampsEveryRate(t *testing.T) {
	adv := AdvancedSettings{
		RevenueGrowthRate:   500,
		CostInflationRate:   -5,
		WorkingCapitalRatio: 80,
		DepreciationRate:    150,
		InflationRate:       -50,
		DebtRatio:           95,
		AdditionalLoanRate:  40,
	}

	clamped := adv.ApplyBounds()

	assert.Equal(t, BoundRevenueGrowth.Max, clamped.RevenueGrowthRate)
	assert.Equal(t, BoundCostInflation.Min, clamped.CostInflationRate)
	assert.Equal(t, BoundWorkingCapital.Max, clamped.WorkingCapitalRatio)
	assert.Equal(t, BoundDepreciation.Max, clamped.DepreciationRate)
	assert.Equal(t, BoundInflation.Min, clamped.InflationRate)
	assert.Equal(t, BoundDebtRatio.Max, clamped.DebtRatio)
	assert.Equal(t, BoundAdditionalLoan.Max, clamped.AdditionalLoanRate)
}

func TestActualInvestment(t *testing.T) {
	in := InvestmentAnalysisInput{InitialInvestment: 500}
	assert.Equal(t, 500.0, in.ActualInvestment())

	in.PolicyLoan = &PolicyLoan{Amount: 200}
	assert.Equal(t, 300.0, in.ActualInvestment())
}

func TestLoanSchedule_ServiceForYearOutOfRange(t *testing.T) {
	var nilSchedule *LoanSchedule
	p, i := nilSchedule.ServiceForYear(0)
	assert.Equal(t, 0.0, p)
	assert.Equal(t, 0.0, i)

	s := &LoanSchedule{Principal: []float64{10}, Interest: []float64{1}}
	p, i = s.ServiceForYear(5)
	assert.Equal(t, 0.0, p)
	assert.Equal(t, 0.0, i)

	p, i = s.ServiceForYear(0)
	assert.Equal(t, 10.0, p)
	assert.Equal(t, 1.0, i)
}
