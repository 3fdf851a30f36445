package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxlab/bizcalc/internal/domain"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const fullDocument = `
investment:
  initial_investment: 500000000
  policy_loan:
    amount: 100000000
    rate: 3.0
    term_years: 5
    grace_years: 1
  annual_revenue: [400000000, 450000000]
  operating_cost_rate: 60
  corporate_tax_rate: 20
  discount_rate: 8
  analysis_years: 5
  advanced:
    revenue_growth_rate: 5
    working_capital_ratio: 10

inheritance:
  total_value: 10000000000
  business_asset_value: 8000000000
  debts_and_expenses: 1000000000
  enterprise_size: small
  business_years: 10
  employee_count: 20
  heir_count: 2
  has_spouse: true
  descendant_count: 1
  continuous_management: true
  employment_maintained: true
  location_maintained: true

sensitivity:
  - name: discount_rate
    base_value: 8
    min_value: 4
    max_value: 12
    steps: 5

submission:
  gateway_url: https://gateway.example.com/leads
  timeout_seconds: 10
  max_retries: 3
  redis_addr: localhost:6379
`

func TestLoadFromFile_FullDocument(t *testing.T) {
	parser := NewInputParser()

	doc, err := parser.LoadFromFile(writeTempYAML(t, fullDocument))
	require.NoError(t, err)

	require.NotNil(t, doc.Investment)
	assert.Equal(t, 500_000_000.0, doc.Investment.InitialInvestment)
	require.NotNil(t, doc.Investment.PolicyLoan)
	assert.Equal(t, 1, doc.Investment.PolicyLoan.GraceYears)
	assert.Equal(t, []float64{400_000_000, 450_000_000}, doc.Investment.AnnualRevenue)
	require.NotNil(t, doc.Investment.Advanced)
	assert.Equal(t, 10.0, doc.Investment.Advanced.WorkingCapitalRatio)

	require.NotNil(t, doc.Inheritance)
	assert.True(t, doc.Inheritance.TotalValue.Equal(decimal.NewFromInt(10_000_000_000)))
	assert.Equal(t, domain.EnterpriseSmall, doc.Inheritance.EnterpriseSize)
	assert.True(t, doc.Inheritance.HasSpouse)

	require.Len(t, doc.Sensitivity, 1)
	assert.Equal(t, "discount_rate", doc.Sensitivity[0].Name)

	require.NotNil(t, doc.Submission)
	assert.Equal(t, "https://gateway.example.com/leads", doc.Submission.GatewayURL)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile("/nonexistent/input.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile(writeTempYAML(t, "investment: [not: closed"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateDocument_RequiresAtLeastOneSection(t *testing.T) {
	parser := NewInputParser()

	err := parser.ValidateDocument(&Document{})
	assert.Error(t, err)
}

func TestValidateDocument_InvestmentRules(t *testing.T) {
	parser := NewInputParser()

	valid := func() *domain.InvestmentAnalysisInput {
		return &domain.InvestmentAnalysisInput{
			InitialInvestment: 100,
			AnnualRevenue:     []float64{50},
			OperatingCostRate: 60,
			CorporateTaxRate:  20,
			DiscountRate:      8,
			AnalysisYears:     5,
		}
	}

	tests := []struct {
		name   string
		mutate func(in *domain.InvestmentAnalysisInput)
	}{
		{"zero investment", func(in *domain.InvestmentAnalysisInput) { in.InitialInvestment = 0 }},
		{"empty revenue", func(in *domain.InvestmentAnalysisInput) { in.AnnualRevenue = nil }},
		{"negative revenue", func(in *domain.InvestmentAnalysisInput) { in.AnnualRevenue = []float64{-1} }},
		{"horizon too long", func(in *domain.InvestmentAnalysisInput) { in.AnalysisYears = 51 }},
		{"cost rate above 100", func(in *domain.InvestmentAnalysisInput) { in.OperatingCostRate = 120 }},
		{"negative discount", func(in *domain.InvestmentAnalysisInput) { in.DiscountRate = -1 }},
		{"loan offsets investment", func(in *domain.InvestmentAnalysisInput) {
			in.PolicyLoan = &domain.PolicyLoan{Amount: 100, Rate: 3, TermYears: 5}
		}},
		{"grace beyond term", func(in *domain.InvestmentAnalysisInput) {
			in.PolicyLoan = &domain.PolicyLoan{Amount: 50, Rate: 3, TermYears: 5, GraceYears: 6}
		}},
		{"grace equals term", func(in *domain.InvestmentAnalysisInput) {
			in.PolicyLoan = &domain.PolicyLoan{Amount: 50, Rate: 3, TermYears: 5, GraceYears: 5}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(in)
			err := parser.ValidateDocument(&Document{Investment: in})
			assert.Error(t, err)
		})
	}

	assert.NoError(t, parser.ValidateDocument(&Document{Investment: valid()}))
}

func TestValidateDocument_ClampsAdvancedSettings(t *testing.T) {
	parser := NewInputParser()
	in := &domain.InvestmentAnalysisInput{
		InitialInvestment: 100,
		AnnualRevenue:     []float64{50},
		AnalysisYears:     5,
		Advanced: &domain.AdvancedSettings{
			RevenueGrowthRate: 500,
			DebtRatio:         99,
		},
	}

	require.NoError(t, parser.ValidateDocument(&Document{Investment: in}))

	assert.Equal(t, domain.BoundRevenueGrowth.Max, in.Advanced.RevenueGrowthRate)
	assert.Equal(t, domain.BoundDebtRatio.Max, in.Advanced.DebtRatio)
}

func TestValidateDocument_InheritanceRules(t *testing.T) {
	parser := NewInputParser()

	valid := func() *domain.BusinessInheritanceInput {
		return &domain.BusinessInheritanceInput{
			TotalValue:         decimal.NewFromInt(1_000_000_000),
			BusinessAssetValue: decimal.NewFromInt(500_000_000),
			EnterpriseSize:     domain.EnterpriseSmall,
			BusinessYears:      10,
			HeirCount:          1,
		}
	}

	tests := []struct {
		name   string
		mutate func(in *domain.BusinessInheritanceInput)
	}{
		{"zero total value", func(in *domain.BusinessInheritanceInput) { in.TotalValue = decimal.Zero }},
		{"asset exceeds total", func(in *domain.BusinessInheritanceInput) {
			in.BusinessAssetValue = decimal.NewFromInt(2_000_000_000)
		}},
		{"negative debts", func(in *domain.BusinessInheritanceInput) {
			in.DebtsAndExpenses = decimal.NewFromInt(-1)
		}},
		{"unknown size", func(in *domain.BusinessInheritanceInput) { in.EnterpriseSize = "huge" }},
		{"no heirs", func(in *domain.BusinessInheritanceInput) { in.HeirCount = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(in)
			err := parser.ValidateDocument(&Document{Inheritance: in})
			assert.Error(t, err)
		})
	}
}

func TestValidateDocument_EmptySizeDefaultsToSmall(t *testing.T) {
	parser := NewInputParser()
	in := &domain.BusinessInheritanceInput{
		TotalValue:         decimal.NewFromInt(1_000_000_000),
		BusinessAssetValue: decimal.NewFromInt(500_000_000),
		BusinessYears:      10,
		HeirCount:          1,
	}

	require.NoError(t, parser.ValidateDocument(&Document{Inheritance: in}))
	assert.Equal(t, domain.EnterpriseSmall, in.EnterpriseSize)
}

func TestValidateDocument_SensitivityRules(t *testing.T) {
	parser := NewInputParser()
	inheritance := &domain.BusinessInheritanceInput{
		TotalValue:         decimal.NewFromInt(1_000_000_000),
		BusinessAssetValue: decimal.NewFromInt(500_000_000),
		BusinessYears:      10,
		HeirCount:          1,
	}

	err := parser.ValidateDocument(&Document{
		Inheritance: inheritance,
		Sensitivity: []domain.SensitivityParameter{
			{Name: "discount_rate", MinValue: 10, MaxValue: 4, Steps: 3},
		},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_value")
}
