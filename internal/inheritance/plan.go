package inheritance

import (
	"github.com/shopspring/decimal"

	"github.com/taxlab/bizcalc/internal/domain"
)

// Post-deduction obligation window and headcount floor.
const (
	managementYears        = 10
	requiredHeadcountRatio = 0.8
	midReviewYear          = 5
)

// Installment plan terms: the total tax spreads over five equal annual
// payments with a fixed carrying interest on the outstanding balance.
const installmentYears = 5

var installmentInterestRate = decimal.NewFromFloat(0.025)

// clawback rates by violation type, applied against the granted deduction.
var penaltyTable = []struct {
	violation string
	rate      decimal.Decimal
}{
	{"가업 전부 폐지·처분", decimal.NewFromFloat(1.00)},
	{"가업 일부 폐지·처분", decimal.NewFromFloat(0.20)},
	{"고용 유지 미달", decimal.NewFromFloat(0.10)},
	{"무단 사업장 이전", decimal.NewFromFloat(0.15)},
	{"연차 이행 보고 누락", decimal.NewFromFloat(0.05)},
}

// BuildManagementPlan derives the ten-year obligation plan that attaches to a
// granted business-inheritance deduction: the headcount floor, the clawback
// exposure table, and a year-by-year timeline with the statutory mid-point
// review and closing report.
func BuildManagementPlan(input *domain.BusinessInheritanceInput, deduction decimal.Decimal) domain.ManagementPlan {
	required := int(decimal.NewFromInt(int64(input.EmployeeCount)).
		Mul(decimal.NewFromFloat(requiredHeadcountRatio)).
		Ceil().IntPart())

	risks := make([]domain.PenaltyRisk, 0, len(penaltyTable))
	for _, p := range penaltyTable {
		risks = append(risks, domain.PenaltyRisk{
			Violation: p.violation,
			Rate:      p.rate,
			Amount:    deduction.Mul(p.rate).Floor(),
		})
	}

	obligations := []string{
		"가업의 계속 경영",
		"상속 당시 고용의 80% 이상 유지",
		"사업장 소재지 유지",
		"가업용 자산의 처분 제한",
	}

	timeline := make([]domain.ObligationYear, 0, managementYears)
	for year := 1; year <= managementYears; year++ {
		entry := domain.ObligationYear{
			Year:        year,
			Obligations: []string{"가업 계속 경영 유지", "고용 인원 기준 충족", "연차 이행 현황 신고"},
		}
		switch year {
		case midReviewYear:
			entry.Milestone = "중간 점검: 고용·자산 유지 실적 종합 검토"
		case managementYears:
			entry.Milestone = "사후관리 종료: 이행 완료 보고서 제출"
		}
		timeline = append(timeline, entry)
	}

	return domain.ManagementPlan{
		DurationYears:     managementYears,
		RequiredEmployees: required,
		Obligations:       obligations,
		PenaltyRisks:      risks,
		Timeline:          timeline,
	}
}

// BuildInstallmentPlan spreads the total tax over five equal annual payments.
// Each payment carries interest on the balance still outstanding at the start
// of that year.
func BuildInstallmentPlan(totalTax decimal.Decimal) domain.InstallmentPlan {
	years := decimal.NewFromInt(installmentYears)
	principal := totalTax.Div(years).Floor()

	payments := make([]domain.InstallmentPayment, 0, installmentYears)
	totalPayable := decimal.Zero
	outstanding := totalTax

	for year := 1; year <= installmentYears; year++ {
		p := principal
		if year == installmentYears {
			// Remainder from flooring lands on the last payment.
			p = outstanding
		}
		interest := outstanding.Mul(installmentInterestRate).Floor()
		payment := domain.InstallmentPayment{
			Year:      year,
			Principal: p,
			Interest:  interest,
			Total:     p.Add(interest),
		}
		payments = append(payments, payment)
		totalPayable = totalPayable.Add(payment.Total)
		outstanding = outstanding.Sub(p)
	}

	return domain.InstallmentPlan{
		Years:        installmentYears,
		InterestRate: installmentInterestRate,
		Payments:     payments,
		TotalPayable: totalPayable,
	}
}
