package inheritance

import (
	"github.com/shopspring/decimal"

	"github.com/taxlab/bizcalc/internal/domain"
)

// Statutory deduction caps by enterprise size. Medium enterprises
// (중견기업) get the materially larger ceiling.
var (
	capSmallEnterprise  = decimal.NewFromInt(30_000_000_000)
	capMediumEnterprise = decimal.NewFromInt(60_000_000_000)
)

// Deduction-rate tiers by operating history.
const longTenureYears = 7

var (
	rateUnderThreeYears = decimal.NewFromFloat(0.80)
	rateThreeToSeven    = decimal.NewFromFloat(0.90)
	rateSevenPlus       = decimal.NewFromFloat(1.00)
)

// Ordinary exemption stack, fixed statutory amounts in whole KRW.
var (
	basicExemption      = decimal.NewFromInt(200_000_000)
	spouseExemption     = decimal.NewFromInt(500_000_000)
	descendantExemption = decimal.NewFromInt(50_000_000)
	elderlyExemption    = decimal.NewFromInt(50_000_000)
	disabledExemption   = decimal.NewFromInt(100_000_000)
	minorExemption      = decimal.NewFromInt(50_000_000)
)

func deductionCap(size domain.EnterpriseSize) decimal.Decimal {
	if size == domain.EnterpriseMedium {
		return capMediumEnterprise
	}
	return capSmallEnterprise
}

// deductionRate tiers by operating history.
//
// TODO(product): the under-3-years tier is unreachable because the
// eligibility gate already rejects those cases outright; the tiering and the
// gate disagree on whether sub-3-year businesses participate at all. Kept
// verbatim pending clarification rather than silently resolved.
func deductionRate(businessYears int) decimal.Decimal {
	switch {
	case businessYears < minBusinessYears:
		return rateUnderThreeYears
	case businessYears < longTenureYears:
		return rateThreeToSeven
	default:
		return rateSevenPlus
	}
}

// BusinessDeduction computes the special business-inheritance deduction:
// the business asset value capped at the statutory ceiling for the enterprise
// size, multiplied by the tenure-tiered rate, floored to whole KRW.
func BusinessDeduction(input *domain.BusinessInheritanceInput) decimal.Decimal {
	base := input.BusinessAssetValue
	if cap := deductionCap(input.EnterpriseSize); base.GreaterThan(cap) {
		base = cap
	}
	return base.Mul(deductionRate(input.BusinessYears)).Floor()
}

// ordinaryExemptions sums the fixed exemption stack applicable regardless of
// the business deduction.
func ordinaryExemptions(input *domain.BusinessInheritanceInput) decimal.Decimal {
	total := basicExemption
	if input.HasSpouse {
		total = total.Add(spouseExemption)
	}
	if input.DescendantCount > 0 {
		total = total.Add(descendantExemption.Mul(decimal.NewFromInt(int64(input.DescendantCount))))
	}
	if input.HasElderlyHeir {
		total = total.Add(elderlyExemption)
	}
	if input.HasDisabledHeir {
		total = total.Add(disabledExemption)
	}
	if input.HasMinorHeir {
		total = total.Add(minorExemption)
	}
	return total
}
