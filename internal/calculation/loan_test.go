package calculation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeLoanSchedule_GraceYearsAccrueInterestOnly(t *testing.T) {
	schedule, err := ComputeLoanSchedule(100_000_000, 5.0, 10, 2, nil)
	require.NoError(t, err)

	assert.Equal(t, 0.0, schedule.Principal[0], "No principal during grace")
	assert.InDelta(t, 5_000_000, schedule.Interest[0], 0.01, "Interest on full balance during grace")
	assert.Equal(t, 0.0, schedule.Principal[1])
	assert.InDelta(t, 5_000_000, schedule.Interest[1], 0.01)
}

func TestComputeLoanSchedule_EqualPrincipalAmortization(t *testing.T) {
	schedule, err := ComputeLoanSchedule(100_000_000, 5.0, 10, 2, nil)
	require.NoError(t, err)

	// 8 repayment years at 12.5M each.
	for year := 2; year < 10; year++ {
		assert.InDelta(t, 12_500_000, schedule.Principal[year], 0.01,
			"Equal installment in year %d", year)
	}

	// Interest declines with the outstanding balance.
	assert.InDelta(t, 5_000_000, schedule.Interest[2], 0.01, "First repayment year, full balance")
	assert.InDelta(t, 4_375_000, schedule.Interest[3], 0.01)
	assert.InDelta(t, 625_000, schedule.Interest[9], 0.01, "Final year, one installment outstanding")
}

func TestComputeLoanSchedule_PrincipalSumsToLoanAmount(t *testing.T) {
	schedule, err := ComputeLoanSchedule(73_000_000, 4.2, 12, 3, nil)
	require.NoError(t, err)

	total := 0.0
	for _, p := range schedule.Principal {
		total += p
	}
	assert.InDelta(t, 73_000_000, total, 1.0, "Repaid principal should equal the loan amount")
}

func TestComputeLoanSchedule_RepaymentOverrideShortensWindow(t *testing.T) {
	override := 4
	schedule, err := ComputeLoanSchedule(100_000_000, 5.0, 10, 2, &override)
	require.NoError(t, err)

	for year := 2; year < 6; year++ {
		assert.InDelta(t, 25_000_000, schedule.Principal[year], 0.01)
	}
	for year := 6; year < 10; year++ {
		assert.Equal(t, 0.0, schedule.Principal[year], "Loan retired, year %d carries zeros", year)
		assert.Equal(t, 0.0, schedule.Interest[year])
	}
}

func TestComputeLoanSchedule_InvalidTerm(t *testing.T) {
	_, err := ComputeLoanSchedule(100_000_000, 5.0, 0, 0, nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "loan_schedule", cfgErr.Op)
}

func TestComputeLoanSchedule_NegativeGrace(t *testing.T) {
	_, err := ComputeLoanSchedule(100_000_000, 5.0, 10, -1, nil)
	assert.Error(t, err)
}

func TestComputeLoanSchedule_GraceConsumesWholeTerm(t *testing.T) {
	// A grace window covering the whole term would yield an interest-only
	// schedule whose principal never amortizes.
	_, err := ComputeLoanSchedule(100_000_000, 5.0, 10, 10, nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "loan_schedule", cfgErr.Op)

	_, err = ComputeLoanSchedule(100_000_000, 5.0, 10, 12, nil)
	assert.Error(t, err, "Grace beyond the term is equally degenerate")

	override := 4
	_, err = ComputeLoanSchedule(100_000_000, 5.0, 10, 10, &override)
	assert.Error(t, err, "An override cannot rescue a grace window covering the term")
}

func TestComputeLoanSchedule_EmptyRepaymentWindow(t *testing.T) {
	zero := 0
	_, err := ComputeLoanSchedule(100_000_000, 5.0, 10, 2, &zero)

	require.Error(t, err, "A zero repayment window with years left on the term cannot amortize")
	assert.Contains(t, err.Error(), "repayment window")
}
