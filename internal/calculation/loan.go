package calculation

import (
	"fmt"

	"github.com/taxlab/bizcalc/internal/domain"
)

// ComputeLoanSchedule builds the year-indexed principal/interest schedule for
// an equal-principal loan with a grace period.
//
// During the grace window no principal is repaid and interest accrues on the
// full balance. During the repayment window the principal is retired in equal
// installments and interest accrues on the declining balance. Years beyond
// grace+repayment carry zeros.
//
// repaymentOverride, when non-nil, replaces the default repayment length of
// totalYears-graceYears.
func ComputeLoanSchedule(principal, annualRatePercent float64, totalYears, graceYears int, repaymentOverride *int) (*domain.LoanSchedule, error) {
	if totalYears <= 0 {
		return nil, &ConfigError{Op: "loan_schedule", Message: "total term must be at least one year"}
	}
	if graceYears < 0 {
		return nil, &ConfigError{Op: "loan_schedule", Message: "grace period cannot be negative"}
	}
	if graceYears >= totalYears {
		return nil, &ConfigError{
			Op:      "loan_schedule",
			Message: fmt.Sprintf("grace period of %d years consumes the whole %d-year term; principal would never be repaid", graceYears, totalYears),
		}
	}

	repaymentYears := totalYears - graceYears
	if repaymentOverride != nil {
		repaymentYears = *repaymentOverride
	}
	if repaymentYears <= 0 {
		return nil, &ConfigError{
			Op:      "loan_schedule",
			Message: fmt.Sprintf("repayment window is %d years; grace %d of %d leaves nothing to amortize over", repaymentYears, graceYears, totalYears),
		}
	}

	rate := annualRatePercent / 100
	schedule := &domain.LoanSchedule{
		Principal: make([]float64, totalYears),
		Interest:  make([]float64, totalYears),
	}

	installment := principal / float64(repaymentYears)

	for year := 0; year < totalYears; year++ {
		switch {
		case year < graceYears:
			schedule.Interest[year] = principal * rate
		case year < graceYears+repaymentYears:
			paid := float64(year-graceYears) * installment
			remaining := principal - paid
			schedule.Principal[year] = installment
			schedule.Interest[year] = remaining * rate
		default:
			// Loan fully retired.
		}
	}

	return schedule, nil
}
