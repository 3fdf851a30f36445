// Package config parses and validates YAML input documents for the
// calculation engines. Validation happens here, at the boundary; the engines
// assume clamped, well-formed records.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/taxlab/bizcalc/internal/domain"
)

// SubmissionSettings configures the lead-submission service.
type SubmissionSettings struct {
	GatewayURL     string `yaml:"gateway_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries"`
	RedisAddr      string `yaml:"redis_addr"`
}

// Document is the top-level input file. A file may carry either engine's
// input, or both, plus optional sensitivity and submission settings.
type Document struct {
	Investment  *domain.InvestmentAnalysisInput  `yaml:"investment,omitempty"`
	Inheritance *domain.BusinessInheritanceInput `yaml:"inheritance,omitempty"`
	Sensitivity []domain.SensitivityParameter    `yaml:"sensitivity,omitempty"`
	Submission  *SubmissionSettings              `yaml:"submission,omitempty"`
}

// InputParser handles parsing of input documents.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a document from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateDocument(&doc); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}

	return &doc, nil
}

// ValidateDocument validates whichever sections are present. A document with
// neither engine input is rejected.
func (ip *InputParser) ValidateDocument(doc *Document) error {
	if doc.Investment == nil && doc.Inheritance == nil {
		return fmt.Errorf("document must contain an investment or inheritance section")
	}
	if doc.Investment != nil {
		if err := ip.validateInvestment(doc.Investment); err != nil {
			return fmt.Errorf("investment: %w", err)
		}
	}
	if doc.Inheritance != nil {
		if err := ip.validateInheritance(doc.Inheritance); err != nil {
			return fmt.Errorf("inheritance: %w", err)
		}
	}
	for i, p := range doc.Sensitivity {
		if err := ip.validateSensitivityParameter(&p); err != nil {
			return fmt.Errorf("sensitivity parameter %d (%s): %w", i, p.Name, err)
		}
	}
	return nil
}

func (ip *InputParser) validateInvestment(in *domain.InvestmentAnalysisInput) error {
	if in.InitialInvestment <= 0 {
		return fmt.Errorf("initial investment must be positive")
	}
	if len(in.AnnualRevenue) == 0 {
		return fmt.Errorf("annual revenue series is required")
	}
	for i, r := range in.AnnualRevenue {
		if r < 0 {
			return fmt.Errorf("annual revenue for year %d cannot be negative", i+1)
		}
	}
	if in.AnalysisYears <= 0 || in.AnalysisYears > 50 {
		return fmt.Errorf("analysis years must be between 1 and 50")
	}
	if in.OperatingCostRate < 0 || in.OperatingCostRate > 100 {
		return fmt.Errorf("operating cost rate must be between 0 and 100")
	}
	if in.CorporateTaxRate < 0 || in.CorporateTaxRate > 50 {
		return fmt.Errorf("corporate tax rate must be between 0 and 50")
	}
	if in.DiscountRate < 0 {
		return fmt.Errorf("discount rate cannot be negative")
	}

	if loan := in.PolicyLoan; loan != nil {
		if loan.Amount < 0 {
			return fmt.Errorf("policy loan amount cannot be negative")
		}
		if loan.Amount >= in.InitialInvestment {
			return fmt.Errorf("policy loan cannot fully offset the initial investment")
		}
		if loan.Amount > 0 {
			if loan.TermYears <= 0 {
				return fmt.Errorf("policy loan term must be at least one year")
			}
			if loan.GraceYears < 0 || loan.GraceYears >= loan.TermYears {
				return fmt.Errorf("policy loan grace period must be shorter than the loan term")
			}
			if loan.RepaymentYears != nil && *loan.RepaymentYears <= 0 {
				return fmt.Errorf("policy loan repayment override must be positive")
			}
		}
	}

	// Advanced rates are clamped rather than rejected; the defensive ranges
	// live in domain.ApplyBounds.
	if in.Advanced != nil {
		clamped := in.Advanced.ApplyBounds()
		*in.Advanced = clamped
	}

	return nil
}

func (ip *InputParser) validateInheritance(in *domain.BusinessInheritanceInput) error {
	if in.TotalValue.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("total inheritance value must be positive")
	}
	if in.BusinessAssetValue.LessThan(decimal.Zero) {
		return fmt.Errorf("business asset value cannot be negative")
	}
	if in.BusinessAssetValue.GreaterThan(in.TotalValue) {
		return fmt.Errorf("business asset value cannot exceed the total inheritance value")
	}
	if in.DebtsAndExpenses.LessThan(decimal.Zero) {
		return fmt.Errorf("debts and expenses cannot be negative")
	}
	switch in.EnterpriseSize {
	case domain.EnterpriseSmall, domain.EnterpriseMedium:
	case "":
		in.EnterpriseSize = domain.EnterpriseSmall
	default:
		return fmt.Errorf("enterprise size must be %q or %q", domain.EnterpriseSmall, domain.EnterpriseMedium)
	}
	if in.BusinessYears < 0 {
		return fmt.Errorf("business years cannot be negative")
	}
	if in.EmployeeCount < 0 {
		return fmt.Errorf("employee count cannot be negative")
	}
	if in.HeirCount <= 0 {
		return fmt.Errorf("at least one heir is required")
	}
	if in.DescendantCount < 0 {
		return fmt.Errorf("descendant count cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateSensitivityParameter(p *domain.SensitivityParameter) error {
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	if p.Steps < 1 {
		return fmt.Errorf("steps must be at least 1")
	}
	if p.MinValue > p.MaxValue {
		return fmt.Errorf("min_value cannot exceed max_value")
	}
	return nil
}
