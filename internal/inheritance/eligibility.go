// Package inheritance implements the business-inheritance (가업상속) tax
// engine: eligibility gating, the special deduction, progressive tax,
// post-inheritance obligation planning and the practical filing checklist.
package inheritance

import (
	"fmt"

	"github.com/taxlab/bizcalc/internal/domain"
)

// Statutory requirement names surfaced to callers on eligibility failure.
const (
	ReqBusinessYears        = "업력 3년 이상"
	ReqContinuousManagement = "가업 계속 경영 의지"
	ReqEmploymentPlan       = "고용 유지 계획"
	ReqLocationPlan         = "사업장 유지 계획"
)

// minBusinessYears is the hard statutory cutoff for the special deduction.
const minBusinessYears = 3

// employmentPlanThreshold is the headcount at and above which an employment
// maintenance plan becomes a critical requirement.
const employmentPlanThreshold = 10

// EligibilityError reports a failed critical requirement. The tax calculation
// aborts entirely on it; this is a business-rule gate, not a technical fault.
type EligibilityError struct {
	Requirement string
	Detail      string
}

func (e *EligibilityError) Error() string {
	return fmt.Sprintf("가업상속공제 적용 불가: %s 요건 미충족 (%s)", e.Requirement, e.Detail)
}

// CheckEligibility evaluates every statutory requirement for the business
// inheritance deduction. Overall eligibility is the AND over critical
// requirements; warnings and recommendations are advisory byproducts and
// never gate by themselves.
func CheckEligibility(input *domain.BusinessInheritanceInput) *domain.EligibilityCheck {
	check := &domain.EligibilityCheck{}

	check.Requirements = append(check.Requirements, domain.RequirementCheck{
		Name:      ReqBusinessYears,
		Level:     domain.RequirementCritical,
		Satisfied: input.BusinessYears >= minBusinessYears,
		Detail:    fmt.Sprintf("현재 업력 %d년", input.BusinessYears),
	})

	check.Requirements = append(check.Requirements, domain.RequirementCheck{
		Name:      ReqContinuousManagement,
		Level:     domain.RequirementCritical,
		Satisfied: input.ContinuousManagement,
		Detail:    "상속인의 가업 계속 경영 의사",
	})

	// Below the headcount threshold the employment plan is vacuously
	// satisfied and never gates; it stays on the report as important.
	employmentLevel := domain.RequirementImportant
	employmentOK := true
	if input.EmployeeCount >= employmentPlanThreshold {
		employmentLevel = domain.RequirementCritical
		employmentOK = input.EmploymentMaintained
	}
	check.Requirements = append(check.Requirements, domain.RequirementCheck{
		Name:      ReqEmploymentPlan,
		Level:     employmentLevel,
		Satisfied: employmentOK,
		Detail:    fmt.Sprintf("상시 근로자 %d명", input.EmployeeCount),
	})

	check.Requirements = append(check.Requirements, domain.RequirementCheck{
		Name:      ReqLocationPlan,
		Level:     domain.RequirementCritical,
		Satisfied: input.LocationMaintained,
		Detail:    "사업장 소재지 유지 계획",
	})

	check.Eligible = check.FirstFailedCritical() == nil

	check.Warnings = buildWarnings(input, check)
	check.Recommendations = buildRecommendations(input)

	return check
}

func buildWarnings(input *domain.BusinessInheritanceInput, check *domain.EligibilityCheck) []domain.EligibilityWarning {
	var warnings []domain.EligibilityWarning

	for _, req := range check.Requirements {
		if req.Level == domain.RequirementCritical && !req.Satisfied {
			warnings = append(warnings, domain.EligibilityWarning{
				Severity:   domain.SeverityCritical,
				Message:    fmt.Sprintf("%s 요건이 충족되지 않았습니다", req.Name),
				Suggestion: suggestionFor(req.Name),
			})
		}
	}

	if input.BusinessYears >= minBusinessYears && input.BusinessYears < longTenureYears {
		warnings = append(warnings, domain.EligibilityWarning{
			Severity:   domain.SeverityInfo,
			Message:    fmt.Sprintf("업력 %d년: 공제율 90%% 구간입니다", input.BusinessYears),
			Suggestion: "업력 7년 이상부터 공제율 100%가 적용됩니다",
		})
	}

	if input.EmployeeCount >= employmentPlanThreshold && input.EmploymentMaintained {
		warnings = append(warnings, domain.EligibilityWarning{
			Severity:   domain.SeverityWarning,
			Message:    "상속 후 10년간 고용의 80% 이상을 유지해야 합니다",
			Suggestion: "4대보험 명부 기준으로 연평균 고용 인원을 관리하세요",
		})
	}

	if input.BusinessAssetValue.GreaterThan(deductionCap(input.EnterpriseSize)) {
		warnings = append(warnings, domain.EligibilityWarning{
			Severity: domain.SeverityInfo,
			Message:  "가업 자산가액이 공제 한도를 초과하여 초과분은 일반 과세됩니다",
		})
	}

	return warnings
}

func buildRecommendations(input *domain.BusinessInheritanceInput) []string {
	recs := []string{
		"상속 개시 전 가업 자산과 개인 자산을 명확히 구분해 두세요",
		"세무 전문가와 함께 사전 증여와 가업상속공제를 비교 검토하세요",
	}
	if !input.HasSpouse && input.DescendantCount > 1 {
		recs = append(recs, "공동 상속 시 가업 승계인을 사전에 지정하면 분쟁 위험이 줄어듭니다")
	}
	if input.EmployeeCount >= employmentPlanThreshold {
		recs = append(recs, "고용 유지 의무 위반 시 공제액이 추징되므로 인력 계획을 문서화하세요")
	}
	return recs
}

func suggestionFor(requirement string) string {
	switch requirement {
	case ReqBusinessYears:
		return "업력 3년 충족 후 상속이 개시되어야 공제를 적용할 수 있습니다"
	case ReqContinuousManagement:
		return "상속인의 가업 종사 및 대표 취임 계획을 확정하세요"
	case ReqEmploymentPlan:
		return "상시 근로자 10명 이상 기업은 고용 유지 계획서가 필요합니다"
	case ReqLocationPlan:
		return "사업장 이전 계획이 있다면 사전 승인 절차를 확인하세요"
	default:
		return ""
	}
}
