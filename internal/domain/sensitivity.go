package domain

// SensitivityParameter describes one investment-input knob to sweep.
type SensitivityParameter struct {
	Name        string  `yaml:"name" json:"name"`
	MinValue    float64 `yaml:"min_value" json:"minValue"`
	MaxValue    float64 `yaml:"max_value" json:"maxValue"`
	Steps       int     `yaml:"steps" json:"steps"`
	BaseValue   float64 `yaml:"base_value" json:"baseValue"`
	Unit        string  `yaml:"unit" json:"unit"`
	Description string  `yaml:"description" json:"description"`
}

// SweepPoint is the engine result at one swept parameter value.
type SweepPoint struct {
	Value  float64                  `json:"value"`
	Result InvestmentAnalysisResult `json:"result"`
}

// ParameterSweep is a single-parameter sensitivity analysis over the
// investment engine.
type ParameterSweep struct {
	Parameter SensitivityParameter `json:"parameter"`
	Points    []SweepPoint         `json:"points"`
	// Elasticity is the NPV percentage change per percent of parameter
	// change, measured against the point closest to the base value.
	Elasticity float64 `json:"elasticity"`
	RiskLevel  string  `json:"riskLevel"`
}

// Common sensitivity parameters for the investment engine. Values are
// percentages, matching InvestmentAnalysisInput.
var (
	DiscountRateParam = SensitivityParameter{
		Name:        "discount_rate",
		MinValue:    2,
		MaxValue:    15,
		Steps:       6,
		BaseValue:   6,
		Unit:        "percent",
		Description: "Discount rate applied to projected cash flows",
	}

	RevenueGrowthParam = SensitivityParameter{
		Name:        "revenue_growth_rate",
		MinValue:    -10,
		MaxValue:    20,
		Steps:       7,
		BaseValue:   3,
		Unit:        "percent",
		Description: "Annual revenue growth applied to the base revenue series",
	}

	CostInflationParam = SensitivityParameter{
		Name:        "cost_inflation_rate",
		MinValue:    0,
		MaxValue:    10,
		Steps:       6,
		BaseValue:   2,
		Unit:        "percent",
		Description: "Operating-cost inflation (dampened by the projector)",
	}

	OperatingCostParam = SensitivityParameter{
		Name:        "operating_cost_rate",
		MinValue:    40,
		MaxValue:    90,
		Steps:       6,
		BaseValue:   70,
		Unit:        "percent",
		Description: "Operating cost as a share of revenue",
	}

	DebtRatioParam = SensitivityParameter{
		Name:        "debt_ratio",
		MinValue:    0,
		MaxValue:    80,
		Steps:       5,
		BaseValue:   30,
		Unit:        "percent",
		Description: "Supplementary debt as a share of the initial investment",
	}
)

// CommonParameters returns the default sweep set.
func CommonParameters() []SensitivityParameter {
	return []SensitivityParameter{
		DiscountRateParam,
		RevenueGrowthParam,
		CostInflationParam,
		OperatingCostParam,
		DebtRatioParam,
	}
}
