package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/taxlab/bizcalc/internal/domain"
)

// InvestmentReport bundles an investment analysis with its input for
// rendering.
type InvestmentReport struct {
	Input  *domain.InvestmentAnalysisInput  `json:"input"`
	Result *domain.InvestmentAnalysisResult `json:"result"`
}

// InheritanceReport bundles a business-inheritance result with its input for
// rendering.
type InheritanceReport struct {
	Input  *domain.BusinessInheritanceInput  `json:"input"`
	Result *domain.BusinessInheritanceResult `json:"result"`
}

// ConsoleFormatter renders a human-readable text report.
type ConsoleFormatter struct{}

// FormatInvestment renders the investment summary and the year-by-year table.
func (cf *ConsoleFormatter) FormatInvestment(report *InvestmentReport) ([]byte, error) {
	var sb strings.Builder
	r := report.Result

	sb.WriteString("투자 타당성 분석 결과\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("총 투자금액:     %s\n", FormatKRWFloat(report.Input.InitialInvestment)))
	sb.WriteString(fmt.Sprintf("자기 투자금액:   %s\n", FormatKRWFloat(report.Input.ActualInvestment())))
	if loan := report.Input.PolicyLoan; loan != nil && loan.Amount > 0 {
		sb.WriteString(fmt.Sprintf("정책자금 대출:   %s (연 %.2f%%, %d년, 거치 %d년)\n",
			FormatKRWFloat(loan.Amount), loan.Rate, loan.TermYears, loan.GraceYears))
	}
	sb.WriteString("\n")

	sb.WriteString("핵심 지표\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("NPV (순현재가치):    %s\n", FormatKRWFloat(r.NPV)))
	sb.WriteString(fmt.Sprintf("IRR (내부수익률):    %s\n", FormatPercent(r.IRR)))
	if r.PaybackPeriod == domain.PaybackNotRecovered {
		sb.WriteString("회수기간:            분석 기간 내 미회수\n")
	} else {
		sb.WriteString(fmt.Sprintf("회수기간:            %d년차\n", r.PaybackPeriod))
	}
	sb.WriteString(fmt.Sprintf("ROI:                 %.2f%%\n", r.ROI))
	sb.WriteString(fmt.Sprintf("수익성지수 (PI):     %.3f\n", r.ProfitabilityIndex))
	sb.WriteString("\n")

	sb.WriteString("연도별 현금흐름\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	sb.WriteString(fmt.Sprintf("%-4s %16s %16s %16s %8s\n", "연차", "매출", "순현금흐름", "누적현금흐름", "DSCR"))
	for i, f := range r.CashFlows {
		dscr := "-"
		if i < len(r.DSCR) && r.DSCR[i] != 0 {
			dscr = fmt.Sprintf("%.2f", r.DSCR[i])
		}
		sb.WriteString(fmt.Sprintf("%-4d %16s %16s %16s %8s\n",
			f.Year, FormatKRWFloat(f.Revenue), FormatKRWFloat(f.NetCashFlow), FormatKRWFloat(f.CumulativeCashFlow), dscr))
	}

	return []byte(sb.String()), nil
}

// FormatInheritance renders the tax summary, eligibility findings and both
// post-inheritance plans.
func (cf *ConsoleFormatter) FormatInheritance(report *InheritanceReport) ([]byte, error) {
	var sb strings.Builder
	r := report.Result

	sb.WriteString("가업상속세 계산 결과\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	sb.WriteString(fmt.Sprintf("과세표준:         %s\n", FormatKRW(r.TaxableAmount)))
	sb.WriteString(fmt.Sprintf("산출세액:         %s\n", FormatKRW(r.ComputedTax)))
	sb.WriteString(fmt.Sprintf("지방소득세:       %s\n", FormatKRW(r.LocalSurtax)))
	sb.WriteString(fmt.Sprintf("총 납부세액:      %s\n", FormatKRW(r.TotalTax)))
	sb.WriteString(fmt.Sprintf("가업상속공제:     %s\n", FormatKRW(r.BusinessDeduction)))
	sb.WriteString(fmt.Sprintf("일반 상속세(비교): %s\n", FormatKRW(r.OrdinaryTax)))
	sb.WriteString(fmt.Sprintf("절감액:           %s (%s%%)\n", FormatKRW(r.TaxSavingAmount), r.TaxSavingRate.String()))
	sb.WriteString("\n")

	sb.WriteString("적격성 검토\n")
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	for _, req := range r.Eligibility.Requirements {
		mark := "충족"
		if !req.Satisfied {
			mark = "미충족"
		}
		sb.WriteString(fmt.Sprintf("  [%s] %s (%s) - %s\n", mark, req.Name, req.Level, req.Detail))
	}
	for _, w := range r.Eligibility.Warnings {
		sb.WriteString(fmt.Sprintf("  ! (%s) %s\n", w.Severity, w.Message))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("사후관리 계획 (%d년, 최소 고용 %d명)\n", r.ManagementPlan.DurationYears, r.ManagementPlan.RequiredEmployees))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	for _, p := range r.ManagementPlan.PenaltyRisks {
		sb.WriteString(fmt.Sprintf("  %-14s 추징율 %s%%  노출액 %s\n",
			p.Violation, p.Rate.Mul(hundred).String(), FormatKRW(p.Amount)))
	}
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("연부연납 계획 (%d년, 연 %s%%)\n", r.InstallmentPlan.Years, r.InstallmentPlan.InterestRate.Mul(hundred).String()))
	sb.WriteString(strings.Repeat("-", 72) + "\n")
	for _, p := range r.InstallmentPlan.Payments {
		sb.WriteString(fmt.Sprintf("  %d년차: 원금 %s + 이자 %s = %s\n",
			p.Year, FormatKRW(p.Principal), FormatKRW(p.Interest), FormatKRW(p.Total)))
	}
	sb.WriteString(fmt.Sprintf("  총 납부액: %s\n", FormatKRW(r.InstallmentPlan.TotalPayable)))

	return []byte(sb.String()), nil
}

// JSONFormatter renders indented JSON.
type JSONFormatter struct{}

func (jf *JSONFormatter) FormatInvestment(report *InvestmentReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

func (jf *JSONFormatter) FormatInheritance(report *InheritanceReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

// CSVFormatter renders the tabular parts of each result.
type CSVFormatter struct{}

// FormatInvestment writes the year-by-year cash-flow table.
func (cf *CSVFormatter) FormatInvestment(report *InvestmentReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"year", "revenue", "operating_cost", "ebit", "tax", "net_income", "depreciation",
		"loan_principal", "loan_interest", "net_cash_flow", "cumulative_cash_flow", "present_value", "dscr"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for i, f := range report.Result.CashFlows {
		dscr := 0.0
		if i < len(report.Result.DSCR) {
			dscr = report.Result.DSCR[i]
		}
		row := []string{
			strconv.Itoa(f.Year),
			ftoa(f.Revenue), ftoa(f.OperatingCost), ftoa(f.EBIT), ftoa(f.Tax), ftoa(f.NetIncome),
			ftoa(f.Depreciation), ftoa(f.LoanPrincipal), ftoa(f.LoanInterest),
			ftoa(f.NetCashFlow), ftoa(f.CumulativeCashFlow), ftoa(f.PresentValue),
			strconv.FormatFloat(dscr, 'f', 4, 64),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

// FormatInheritance writes the installment schedule.
func (cf *CSVFormatter) FormatInheritance(report *InheritanceReport) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"year", "principal", "interest", "total"}); err != nil {
		return nil, err
	}
	for _, p := range report.Result.InstallmentPlan.Payments {
		row := []string{strconv.Itoa(p.Year), p.Principal.String(), p.Interest.String(), p.Total.String()}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}
