package inheritance

import (
	"github.com/shopspring/decimal"

	"github.com/taxlab/bizcalc/internal/calculation"
	"github.com/taxlab/bizcalc/internal/domain"
	"github.com/taxlab/bizcalc/internal/tax"
)

// localSurtaxRate is the flat local income surtax on the computed
// inheritance tax.
var localSurtaxRate = decimal.NewFromFloat(0.10)

// Calculator orchestrates the business-inheritance tax computation.
type Calculator struct {
	Logger calculation.Logger
}

// NewCalculator creates a calculator with the given logger, defaulting to a
// no-op logger.
func NewCalculator(logger calculation.Logger) *Calculator {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Calculator{Logger: logger}
}

// Calculate runs the full business-inheritance computation:
//
//  1. the ordinary-inheritance counterfactual (no special deduction), kept
//     purely as the baseline for the tax-saving metric;
//  2. the eligibility gate; a failed critical requirement aborts with an
//     EligibilityError naming it, and no partial result is returned;
//  3. the special deduction, the exemption stack, progressive tax and the
//     local surtax;
//  4. the ten-year management plan and the five-year installment plan.
func (c *Calculator) Calculate(input *domain.BusinessInheritanceInput) (*domain.BusinessInheritanceResult, error) {
	brackets := tax.InheritanceBrackets()

	// Counterfactual first: computed even though the special deduction may
	// make it moot, so the saving metric always has its baseline.
	ordinaryTax := c.ordinaryTax(input, brackets)

	eligibility := CheckEligibility(input)
	if failed := eligibility.FirstFailedCritical(); failed != nil {
		c.Logger.Infof("eligibility gate failed: %s", failed.Name)
		return nil, &EligibilityError{Requirement: failed.Name, Detail: failed.Detail}
	}

	deduction := BusinessDeduction(input)

	netEstate := input.TotalValue.Sub(input.DebtsAndExpenses)
	taxable := netEstate.Sub(deduction).Sub(ordinaryExemptions(input))
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}

	computed := tax.CalculateProgressive(taxable, brackets)
	surtax := computed.Mul(localSurtaxRate).Floor()
	total := computed.Add(surtax)

	saving := ordinaryTax.Sub(total)
	savingRate := decimal.Zero
	if ordinaryTax.GreaterThan(decimal.Zero) {
		savingRate = saving.Div(ordinaryTax).Mul(decimal.NewFromInt(100)).Round(2)
	}

	result := &domain.BusinessInheritanceResult{
		TaxableAmount:     taxable,
		ComputedTax:       computed,
		LocalSurtax:       surtax,
		TotalTax:          total,
		BusinessDeduction: deduction,
		OrdinaryTax:       ordinaryTax,
		TaxSavingAmount:   saving,
		TaxSavingRate:     savingRate,
		Eligibility:       *eligibility,
		ManagementPlan:    BuildManagementPlan(input, deduction),
		InstallmentPlan:   BuildInstallmentPlan(total),
	}

	c.Logger.Debugf("inheritance tax: taxable=%s total=%s saving=%s", taxable, total, saving)
	return result, nil
}

// ordinaryTax computes the what-if tax with the exemption stack but without
// the business deduction, including its own local surtax so the comparison
// against the special-deduction total is like for like.
func (c *Calculator) ordinaryTax(input *domain.BusinessInheritanceInput, brackets []tax.Bracket) decimal.Decimal {
	taxable := input.TotalValue.Sub(input.DebtsAndExpenses).Sub(ordinaryExemptions(input))
	if taxable.LessThan(decimal.Zero) {
		taxable = decimal.Zero
	}
	computed := tax.CalculateProgressive(taxable, brackets)
	return computed.Add(computed.Mul(localSurtaxRate).Floor())
}
