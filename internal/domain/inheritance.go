package domain

import (
	"github.com/shopspring/decimal"
)

// EnterpriseSize classifies the inherited business for deduction purposes.
type EnterpriseSize string

const (
	EnterpriseSmall  EnterpriseSize = "small"  // 중소기업
	EnterpriseMedium EnterpriseSize = "medium" // 중견기업
)

// BusinessInheritanceInput is the fully-specified input record for the
// business-inheritance tax engine. All monetary amounts are whole KRW.
type BusinessInheritanceInput struct {
	TotalValue         decimal.Decimal `yaml:"total_value" json:"totalValue"`
	BusinessAssetValue decimal.Decimal `yaml:"business_asset_value" json:"businessAssetValue"`
	PersonalAssetValue decimal.Decimal `yaml:"personal_asset_value" json:"personalAssetValue"`
	DebtsAndExpenses   decimal.Decimal `yaml:"debts_and_expenses" json:"debtsAndExpenses"`

	EnterpriseSize EnterpriseSize  `yaml:"enterprise_size" json:"enterpriseSize"`
	BusinessYears  int             `yaml:"business_years" json:"businessYears"`
	EmployeeCount  int             `yaml:"employee_count" json:"employeeCount"`
	AnnualRevenue  decimal.Decimal `yaml:"annual_revenue" json:"annualRevenue"`

	HeirCount       int  `yaml:"heir_count" json:"heirCount"`
	HasSpouse       bool `yaml:"has_spouse" json:"hasSpouse"`
	DescendantCount int  `yaml:"descendant_count" json:"descendantCount"`

	ContinuousManagement bool `yaml:"continuous_management" json:"continuousManagement"`
	EmploymentMaintained bool `yaml:"employment_maintained" json:"employmentMaintained"`
	LocationMaintained   bool `yaml:"location_maintained" json:"locationMaintained"`

	HasDisabledHeir bool `yaml:"has_disabled_heir" json:"hasDisabledHeir"`
	HasElderlyHeir  bool `yaml:"has_elderly_heir" json:"hasElderlyHeir"`
	HasMinorHeir    bool `yaml:"has_minor_heir" json:"hasMinorHeir"`
}

// RequirementLevel tags how a statutory requirement affects eligibility.
type RequirementLevel string

const (
	// RequirementCritical requirements gate eligibility outright.
	RequirementCritical RequirementLevel = "critical"
	// RequirementImportant requirements appear on the report but never gate.
	RequirementImportant RequirementLevel = "important"
)

// RequirementCheck is the evaluation of a single statutory condition.
type RequirementCheck struct {
	Name      string           `json:"name"`
	Level     RequirementLevel `json:"level"`
	Satisfied bool             `json:"satisfied"`
	Detail    string           `json:"detail"`
}

// WarningSeverity grades an eligibility warning.
type WarningSeverity string

const (
	SeverityCritical WarningSeverity = "critical"
	SeverityWarning  WarningSeverity = "warning"
	SeverityInfo     WarningSeverity = "info"
)

// EligibilityWarning is an advisory finding produced while checking
// eligibility; it never gates the calculation by itself.
type EligibilityWarning struct {
	Severity   WarningSeverity `json:"severity"`
	Message    string          `json:"message"`
	Suggestion string          `json:"suggestion,omitempty"`
}

// EligibilityCheck is the result of evaluating every statutory requirement.
// Eligible holds iff every critical requirement is satisfied.
type EligibilityCheck struct {
	Eligible        bool                 `json:"eligible"`
	Requirements    []RequirementCheck   `json:"requirements"`
	Warnings        []EligibilityWarning `json:"warnings"`
	Recommendations []string             `json:"recommendations"`
}

// FirstFailedCritical returns the first unsatisfied critical requirement,
// or nil when eligibility holds.
func (ec *EligibilityCheck) FirstFailedCritical() *RequirementCheck {
	for i := range ec.Requirements {
		r := &ec.Requirements[i]
		if r.Level == RequirementCritical && !r.Satisfied {
			return r
		}
	}
	return nil
}

// PenaltyRisk is one row of the post-inheritance clawback table: a violation
// type, its statutory recapture rate, and the absolute exposure against the
// deduction actually granted.
type PenaltyRisk struct {
	Violation string          `json:"violation"`
	Rate      decimal.Decimal `json:"rate"`
	Amount    decimal.Decimal `json:"amount"`
}

// ObligationYear is a single year of the management-obligation timeline.
type ObligationYear struct {
	Year        int      `json:"year"`
	Obligations []string `json:"obligations"`
	Milestone   string   `json:"milestone,omitempty"`
}

// ManagementPlan captures the ten-year obligations that attach to the
// business-inheritance deduction.
type ManagementPlan struct {
	DurationYears     int              `json:"durationYears"`
	RequiredEmployees int              `json:"requiredEmployees"`
	Obligations       []string         `json:"obligations"`
	PenaltyRisks      []PenaltyRisk    `json:"penaltyRisks"`
	Timeline          []ObligationYear `json:"timeline"`
}

// InstallmentPayment is one annual payment of the installment plan.
type InstallmentPayment struct {
	Year      int             `json:"year"`
	Principal decimal.Decimal `json:"principal"`
	Interest  decimal.Decimal `json:"interest"`
	Total     decimal.Decimal `json:"total"`
}

// InstallmentPlan spreads the total tax over equal annual payments with a
// fixed carrying interest rate.
type InstallmentPlan struct {
	Years        int                  `json:"years"`
	InterestRate decimal.Decimal      `json:"interestRate"`
	Payments     []InstallmentPayment `json:"payments"`
	TotalPayable decimal.Decimal      `json:"totalPayable"`
}

// BusinessInheritanceResult is the aggregate outcome of a business
// inheritance tax calculation.
type BusinessInheritanceResult struct {
	TaxableAmount      decimal.Decimal  `json:"taxableAmount"`
	ComputedTax        decimal.Decimal  `json:"computedTax"`
	LocalSurtax        decimal.Decimal  `json:"localSurtax"`
	TotalTax           decimal.Decimal  `json:"totalTax"`
	BusinessDeduction  decimal.Decimal  `json:"businessDeduction"`
	OrdinaryTax        decimal.Decimal  `json:"ordinaryTax"`
	TaxSavingAmount    decimal.Decimal  `json:"taxSavingAmount"`
	TaxSavingRate      decimal.Decimal  `json:"taxSavingRate"`
	Eligibility        EligibilityCheck `json:"eligibility"`
	ManagementPlan     ManagementPlan   `json:"managementPlan"`
	InstallmentPlan    InstallmentPlan  `json:"installmentPlan"`
}
