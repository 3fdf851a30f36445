package domain

// AdvancedSettings holds the optional tuning knobs for an investment analysis.
// All rate fields are plain percentages (5 means 5%), matching the form inputs
// they are collected from. They are clamped to defensive ranges by
// ApplyBounds before the projector ever sees them.
type AdvancedSettings struct {
	RevenueGrowthRate   float64 `yaml:"revenue_growth_rate" json:"revenueGrowthRate"`
	CostInflationRate   float64 `yaml:"cost_inflation_rate" json:"costInflationRate"`
	WorkingCapitalRatio float64 `yaml:"working_capital_ratio" json:"workingCapitalRatio"`
	DepreciationRate    float64 `yaml:"depreciation_rate" json:"depreciationRate"`
	ResidualValue       float64 `yaml:"residual_value" json:"residualValue"`
	InflationRate       float64 `yaml:"inflation_rate" json:"inflationRate"`
	DebtRatio           float64 `yaml:"debt_ratio" json:"debtRatio"`
	AdditionalLoanRate  float64 `yaml:"additional_loan_rate" json:"additionalLoanRate"`
}

// PolicyLoan describes an optional policy-fund loan offsetting the
// up-front investment.
type PolicyLoan struct {
	Amount         float64 `yaml:"amount" json:"amount"`
	Rate           float64 `yaml:"rate" json:"rate"`
	TermYears      int     `yaml:"term_years" json:"termYears"`
	GraceYears     int     `yaml:"grace_years" json:"graceYears"`
	RepaymentYears *int    `yaml:"repayment_years,omitempty" json:"repaymentYears,omitempty"`
}

// InvestmentAnalysisInput is the fully-specified input record for the
// investment analysis engine.
type InvestmentAnalysisInput struct {
	InitialInvestment float64           `yaml:"initial_investment" json:"initialInvestment"`
	PolicyLoan        *PolicyLoan       `yaml:"policy_loan,omitempty" json:"policyLoan,omitempty"`
	AnnualRevenue     []float64         `yaml:"annual_revenue" json:"annualRevenue"`
	OperatingCostRate float64           `yaml:"operating_cost_rate" json:"operatingCostRate"`
	CorporateTaxRate  float64           `yaml:"corporate_tax_rate" json:"corporateTaxRate"`
	DiscountRate      float64           `yaml:"discount_rate" json:"discountRate"`
	AnalysisYears     int               `yaml:"analysis_years" json:"analysisYears"`
	Advanced          *AdvancedSettings `yaml:"advanced,omitempty" json:"advanced,omitempty"`
}

// ActualInvestment returns the up-front capital actually funded by the
// investor, after the policy-loan offset.
func (in *InvestmentAnalysisInput) ActualInvestment() float64 {
	if in.PolicyLoan != nil {
		return in.InitialInvestment - in.PolicyLoan.Amount
	}
	return in.InitialInvestment
}

// AdvancedOrDefault returns the advanced settings, or a zero-valued record
// when none were provided.
func (in *InvestmentAnalysisInput) AdvancedOrDefault() AdvancedSettings {
	if in.Advanced != nil {
		return *in.Advanced
	}
	return AdvancedSettings{}
}

// RevenueForYear returns the base revenue for a projection year, falling back
// to the first entry when the series is shorter than the horizon.
func (in *InvestmentAnalysisInput) RevenueForYear(year int) float64 {
	if year < len(in.AnnualRevenue) {
		return in.AnnualRevenue[year]
	}
	if len(in.AnnualRevenue) > 0 {
		return in.AnnualRevenue[0]
	}
	return 0
}

// LoanSchedule holds the year-indexed principal and interest payments of an
// amortized loan. Both slices have length equal to the loan's total term.
type LoanSchedule struct {
	Principal []float64 `json:"principal"`
	Interest  []float64 `json:"interest"`
}

// ServiceForYear returns the principal and interest due in a projection year,
// or zeros when the year falls outside the schedule.
func (s *LoanSchedule) ServiceForYear(year int) (principal, interest float64) {
	if s == nil || year < 0 || year >= len(s.Principal) {
		return 0, 0
	}
	return s.Principal[year], s.Interest[year]
}

// YearlyCashFlow is one year of the investment projection.
type YearlyCashFlow struct {
	Year                 int     `json:"year"`
	Revenue              float64 `json:"revenue"`
	OperatingCost        float64 `json:"operatingCost"`
	EBIT                 float64 `json:"ebit"`
	Tax                  float64 `json:"tax"`
	NetIncome            float64 `json:"netIncome"`
	Depreciation         float64 `json:"depreciation"`
	LoanPrincipal        float64 `json:"loanPrincipal"`
	LoanInterest         float64 `json:"loanInterest"`
	AdditionalInterest   float64 `json:"additionalInterest"`
	WorkingCapitalChange float64 `json:"workingCapitalChange"`
	NetCashFlow          float64 `json:"netCashFlow"`
	CumulativeCashFlow   float64 `json:"cumulativeCashFlow"`
	PresentValue         float64 `json:"presentValue"`
}

// PaybackNotRecovered is the sentinel payback period for investments whose
// cumulative cash flow never turns non-negative within the horizon.
const PaybackNotRecovered = -1

// InvestmentAnalysisResult aggregates the projection and its summary metrics.
type InvestmentAnalysisResult struct {
	NPV                float64          `json:"npv"`
	IRR                float64          `json:"irr"`
	PaybackPeriod      int              `json:"paybackPeriod"`
	DSCR               []float64        `json:"dscr"`
	ROI                float64          `json:"roi"`
	ProfitabilityIndex float64          `json:"profitabilityIndex"`
	CashFlows          []YearlyCashFlow `json:"cashFlows"`
}
