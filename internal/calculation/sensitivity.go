package calculation

import (
	"fmt"
	"math"

	"github.com/taxlab/bizcalc/internal/domain"
)

// SensitivityAnalyzer sweeps one investment parameter at a time and measures
// how hard NPV reacts. Each swept point is an independent full engine run.
type SensitivityAnalyzer struct {
	engine *InvestmentEngine
}

// NewSensitivityAnalyzer creates an analyzer with its own engine.
func NewSensitivityAnalyzer(logger Logger) *SensitivityAnalyzer {
	return &SensitivityAnalyzer{engine: NewInvestmentEngine(logger)}
}

// AnalyzeParameter sweeps a single parameter across its configured range and
// returns the per-value results plus an NPV elasticity score.
func (sa *SensitivityAnalyzer) AnalyzeParameter(input *domain.InvestmentAnalysisInput, param domain.SensitivityParameter) (*domain.ParameterSweep, error) {
	values := sa.generateValues(param)

	points := make([]domain.SweepPoint, 0, len(values))
	for _, value := range values {
		modified, err := sa.applyParameter(input, param.Name, value)
		if err != nil {
			return nil, err
		}
		result, err := sa.engine.Analyze(modified)
		if err != nil {
			return nil, fmt.Errorf("sweep %s=%.3f: %w", param.Name, value, err)
		}
		points = append(points, domain.SweepPoint{Value: value, Result: *result})
	}

	sweep := &domain.ParameterSweep{
		Parameter: param,
		Points:    points,
	}
	sweep.Elasticity = sa.elasticity(points, param)
	sweep.RiskLevel = riskLevel(sweep.Elasticity)
	return sweep, nil
}

// AnalyzeAll sweeps every given parameter and returns the sweeps ordered as
// provided. The caller can rank by Elasticity to find the dominant knob.
func (sa *SensitivityAnalyzer) AnalyzeAll(input *domain.InvestmentAnalysisInput, params []domain.SensitivityParameter) ([]*domain.ParameterSweep, error) {
	sweeps := make([]*domain.ParameterSweep, 0, len(params))
	for _, p := range params {
		sweep, err := sa.AnalyzeParameter(input, p)
		if err != nil {
			return nil, err
		}
		sweeps = append(sweeps, sweep)
	}
	return sweeps, nil
}

// MostSensitive returns the sweep with the largest absolute elasticity, or
// nil for an empty slice.
func MostSensitive(sweeps []*domain.ParameterSweep) *domain.ParameterSweep {
	var best *domain.ParameterSweep
	for _, s := range sweeps {
		if best == nil || math.Abs(s.Elasticity) > math.Abs(best.Elasticity) {
			best = s
		}
	}
	return best
}

func (sa *SensitivityAnalyzer) generateValues(param domain.SensitivityParameter) []float64 {
	if param.Steps <= 1 {
		return []float64{param.BaseValue}
	}
	step := (param.MaxValue - param.MinValue) / float64(param.Steps-1)
	values := make([]float64, 0, param.Steps)
	for i := 0; i < param.Steps; i++ {
		values = append(values, param.MinValue+step*float64(i))
	}
	return values
}

// applyParameter returns a copy of the input with one named parameter
// replaced. Unknown names are rejected rather than silently ignored.
func (sa *SensitivityAnalyzer) applyParameter(input *domain.InvestmentAnalysisInput, name string, value float64) (*domain.InvestmentAnalysisInput, error) {
	modified := *input
	adv := input.AdvancedOrDefault()

	switch name {
	case "discount_rate":
		modified.DiscountRate = value
	case "operating_cost_rate":
		modified.OperatingCostRate = value
	case "corporate_tax_rate":
		modified.CorporateTaxRate = value
	case "revenue_growth_rate":
		adv.RevenueGrowthRate = value
		modified.Advanced = &adv
	case "cost_inflation_rate":
		adv.CostInflationRate = value
		modified.Advanced = &adv
	case "working_capital_ratio":
		adv.WorkingCapitalRatio = value
		modified.Advanced = &adv
	case "debt_ratio":
		adv.DebtRatio = value
		modified.Advanced = &adv
	case "additional_loan_rate":
		adv.AdditionalLoanRate = value
		modified.Advanced = &adv
	default:
		return nil, &ConfigError{Op: "sensitivity", Message: fmt.Sprintf("unknown sweep parameter %q", name)}
	}

	return &modified, nil
}

// elasticity compares the extreme sweep points against the point closest to
// the base value: percentage NPV change per percent of parameter change.
func (sa *SensitivityAnalyzer) elasticity(points []domain.SweepPoint, param domain.SensitivityParameter) float64 {
	if len(points) < 2 {
		return 0
	}

	base := points[0]
	minDiff := math.Abs(points[0].Value - param.BaseValue)
	for _, p := range points[1:] {
		if d := math.Abs(p.Value - param.BaseValue); d < minDiff {
			minDiff = d
			base = p
		}
	}
	if base.Result.NPV == 0 || param.BaseValue == 0 {
		return 0
	}

	maxScore := 0.0
	for _, p := range points {
		if p.Value == base.Value {
			continue
		}
		paramChange := (p.Value - param.BaseValue) / param.BaseValue * 100
		if paramChange == 0 {
			continue
		}
		npvChange := (p.Result.NPV - base.Result.NPV) / math.Abs(base.Result.NPV) * 100
		score := math.Abs(npvChange / paramChange)
		if score > maxScore {
			maxScore = score
		}
	}
	return maxScore
}

func riskLevel(elasticity float64) string {
	abs := math.Abs(elasticity)
	switch {
	case abs < 1:
		return "LOW"
	case abs < 3:
		return "MEDIUM"
	case abs < 8:
		return "HIGH"
	default:
		return "CRITICAL"
	}
}
